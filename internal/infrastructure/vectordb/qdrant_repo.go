package vectordb

import (
	"context"
	"fmt"
	"time"

	pb "github.com/qdrant/go-client/qdrant"

	"github.com/alfredhq/alfred/internal/repository"
)

// QdrantRepository stores one point per transaction, keyed by its id, with
// the owner in the payload so searches never cross users.
type QdrantRepository struct {
	client     *QdrantClient
	collection string
	now        func() time.Time
}

func NewQdrantRepository(client *QdrantClient, collection string) *QdrantRepository {
	return &QdrantRepository{client: client, collection: collection, now: time.Now}
}

var _ repository.MemoryRepo = (*QdrantRepository)(nil)

func (r *QdrantRepository) SaveMemory(ctx context.Context, uid string, transactionID uint, description, category string, vector []float32) error {
	wait := true
	_, err := r.client.points.Upsert(ctx, &pb.UpsertPoints{
		CollectionName: r.collection,
		Wait:           &wait,
		Points: []*pb.PointStruct{{
			Id: pointID(transactionID),
			Vectors: &pb.Vectors{
				VectorsOptions: &pb.Vectors_Vector{Vector: &pb.Vector{Data: vector}},
			},
			Payload: map[string]*pb.Value{
				"user_id":        stringValue(uid),
				"transaction_id": {Kind: &pb.Value_IntegerValue{IntegerValue: int64(transactionID)}},
				"description":    stringValue(description),
				"category":       stringValue(category),
				"timestamp":      {Kind: &pb.Value_IntegerValue{IntegerValue: r.now().Unix()}},
			},
		}},
	})
	if err != nil {
		return fmt.Errorf("qdrant upsert: %w", err)
	}
	return nil
}

func (r *QdrantRepository) SearchSimilar(ctx context.Context, uid string, limit int, queryVector []float32) ([]repository.MemoryResult, error) {
	filter := &pb.Filter{
		Must: []*pb.Condition{{
			ConditionOneOf: &pb.Condition_Field{
				Field: &pb.FieldCondition{
					Key:   "user_id",
					Match: &pb.Match{MatchValue: &pb.Match_Keyword{Keyword: uid}},
				},
			},
		}},
	}

	res, err := r.client.points.Search(ctx, &pb.SearchPoints{
		CollectionName: r.collection,
		Vector:         queryVector,
		Limit:          uint64(limit),
		Filter:         filter,
		WithPayload: &pb.WithPayloadSelector{
			SelectorOptions: &pb.WithPayloadSelector_Enable{Enable: true},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant search: %w", err)
	}

	results := make([]repository.MemoryResult, 0, len(res.GetResult()))
	for _, point := range res.GetResult() {
		p := point.GetPayload()
		results = append(results, repository.MemoryResult{
			Content:   p["description"].GetStringValue(),
			Category:  p["category"].GetStringValue(),
			Timestamp: p["timestamp"].GetIntegerValue(),
			Score:     point.GetScore(),
		})
	}
	return results, nil
}

func (r *QdrantRepository) Delete(ctx context.Context, transactionID uint) error {
	_, err := r.client.points.Delete(ctx, &pb.DeletePoints{
		CollectionName: r.collection,
		Points: &pb.PointsSelector{
			PointsSelectorOneOf: &pb.PointsSelector_Points{
				Points: &pb.PointsIdsList{Ids: []*pb.PointId{pointID(transactionID)}},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("qdrant delete: %w", err)
	}
	return nil
}

func pointID(id uint) *pb.PointId {
	return &pb.PointId{PointIdOptions: &pb.PointId_Num{Num: uint64(id)}}
}

func stringValue(s string) *pb.Value {
	return &pb.Value{Kind: &pb.Value_StringValue{StringValue: s}}
}
