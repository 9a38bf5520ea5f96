package assistant

// MaxRecentTasks caps how many tasks are shown to the model.
const MaxRecentTasks = 5

type TaskRef struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

type ListRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Snapshot is the bounded slice of application state the model sees so it
// can resolve references like list names.
type Snapshot struct {
	RecentTasks []TaskRef
	Lists       []ListRef
	// History holds optional "description -> category" hints taken from
	// similar past transactions.
	History []string
}

// NewSnapshot builds a snapshot, keeping at most MaxRecentTasks tasks.
func NewSnapshot(tasks []TaskRef, lists []ListRef) Snapshot {
	return Snapshot{RecentTasks: capTasks(tasks), Lists: lists}
}

// FindList looks a list up by id.
func (s Snapshot) FindList(id uint) (ListRef, bool) {
	for _, l := range s.Lists {
		if l.ID == id {
			return l, true
		}
	}
	return ListRef{}, false
}

func capTasks(tasks []TaskRef) []TaskRef {
	if len(tasks) > MaxRecentTasks {
		return tasks[:MaxRecentTasks]
	}
	return tasks
}
