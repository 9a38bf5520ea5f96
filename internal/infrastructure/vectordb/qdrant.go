package vectordb

import (
	"context"
	"fmt"
	"log/slog"

	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type QdrantClient struct {
	conn        *grpc.ClientConn
	collections pb.CollectionsClient
	points      pb.PointsClient
}

// NewQdrantClient prepares a gRPC connection; it is established lazily on
// the first call.
func NewQdrantClient(host string, port int) (*QdrantClient, error) {
	addr := fmt.Sprintf("%s:%d", host, port)

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("qdrant client %s: %w", addr, err)
	}
	return newQdrantClient(conn), nil
}

func newQdrantClient(conn *grpc.ClientConn) *QdrantClient {
	return &QdrantClient{
		conn:        conn,
		collections: pb.NewCollectionsClient(conn),
		points:      pb.NewPointsClient(conn),
	}
}

func (q *QdrantClient) Close() {
	if q.conn != nil {
		_ = q.conn.Close()
	}
}

// InitCollection creates the collection with cosine distance unless it
// already exists.
func (q *QdrantClient) InitCollection(ctx context.Context, name string, size uint64) error {
	if info, err := q.collections.Get(ctx, &pb.GetCollectionInfoRequest{CollectionName: name}); err == nil && info != nil {
		slog.Debug("qdrant collection exists", "collection", name)
		return nil
	}

	slog.Info("creating qdrant collection", "collection", name, "dim", size)
	_, err := q.collections.Create(ctx, &pb.CreateCollection{
		CollectionName: name,
		VectorsConfig: &pb.VectorsConfig{
			Config: &pb.VectorsConfig_Params{
				Params: &pb.VectorParams{
					Size:     size,
					Distance: pb.Distance_Cosine,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create collection %s: %w", name, err)
	}
	return nil
}
