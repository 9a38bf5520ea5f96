package assistant

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type ActionType string

const (
	ActionAddTransaction ActionType = "ADD_TRANSACTION"
	ActionAddTask        ActionType = "ADD_TASK"
	ActionAddListItem    ActionType = "ADD_LIST_ITEM"
	ActionAddProject     ActionType = "ADD_PROJECT"
	ActionNone           ActionType = "NONE"
)

// ChatReply is what one chat turn resolves to.
type ChatReply struct {
	Reply  string  `json:"reply"`
	Action *Action `json:"action,omitempty"`
}

// ActionType returns the reply's action type, NONE when there is none.
func (r ChatReply) ActionType() ActionType {
	if r.Action == nil {
		return ActionNone
	}
	return r.Action.Type
}

// Action is a tagged union: exactly the draft matching Type is non-nil.
// On the wire it is {"type": "...", "payload": {...}}.
type Action struct {
	Type        ActionType
	Transaction *TransactionDraft
	Task        *TaskDraft
	ListItem    *ListItemDraft
	Project     *ProjectDraft

	// unknownType keeps a type the model invented; such actions decode as NONE.
	unknownType string
}

type RecurrenceDraft struct {
	Period   string `json:"period"`
	Interval int    `json:"interval,omitempty"`
	Limit    *int   `json:"limit,omitempty"`
}

type TransactionDraft struct {
	Description string           `json:"description,omitempty"`
	Amount      Amount           `json:"amount"`
	Type        string           `json:"type,omitempty"`
	Category    string           `json:"category,omitempty"`
	Date        string           `json:"date,omitempty"`
	Recurrence  *RecurrenceDraft `json:"recurrence,omitempty"`
}

type TaskDraft struct {
	Title      string           `json:"title,omitempty"`
	Date       string           `json:"date,omitempty"`
	Time       string           `json:"time,omitempty"`
	Priority   string           `json:"priority,omitempty"`
	Recurrence *RecurrenceDraft `json:"recurrence,omitempty"`
}

type ListItemDraft struct {
	ListID RefID  `json:"listId"`
	Name   string `json:"name,omitempty"`
}

type ProjectDraft struct {
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	TargetAmount Amount `json:"targetAmount"`
	Category     string `json:"category,omitempty"`
	Deadline     string `json:"deadline,omitempty"`
}

type actionEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

var errMissingPayload = errors.New("missing payload")

func (a *Action) UnmarshalJSON(data []byte) error {
	var env actionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	typ := ActionType(strings.ToUpper(strings.TrimSpace(env.Type)))
	*a = Action{Type: typ}

	var err error
	switch typ {
	case "", ActionNone:
		a.Type = ActionNone
	case ActionAddTransaction:
		a.Transaction = &TransactionDraft{}
		err = decodePayload(env.Payload, a.Transaction)
	case ActionAddTask:
		a.Task = &TaskDraft{}
		err = decodePayload(env.Payload, a.Task)
	case ActionAddListItem:
		a.ListItem = &ListItemDraft{}
		err = decodePayload(env.Payload, a.ListItem)
	case ActionAddProject:
		a.Project = &ProjectDraft{}
		err = decodePayload(env.Payload, a.Project)
	default:
		*a = Action{Type: ActionNone, unknownType: env.Type}
	}
	if err != nil {
		return fmt.Errorf("%s payload: %w", typ, err)
	}
	return nil
}

func decodePayload(raw json.RawMessage, dst any) error {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return errMissingPayload
	}
	return json.Unmarshal(raw, dst)
}

func (a Action) MarshalJSON() ([]byte, error) {
	var payload any
	switch a.Type {
	case ActionAddTransaction:
		payload = a.Transaction
	case ActionAddTask:
		payload = a.Task
	case ActionAddListItem:
		payload = a.ListItem
	case ActionAddProject:
		payload = a.Project
	}
	return json.Marshal(struct {
		Type    ActionType `json:"type"`
		Payload any        `json:"payload,omitempty"`
	}{a.Type, payload})
}
