package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// Compile-time interface check.
var _ ports.TodoRepository = (*Repository)(nil)

const (
	fieldID        = "_id"
	fieldTitle     = "title"
	fieldCompleted = "completed"
	fieldCreatedAt = "createdAt"
	fieldUpdatedAt = "updatedAt"
)

// document is the stored shape of a todo.
type document struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Completed bool               `bson:"completed"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *document) toDomain() *todo.Todo {
	return &todo.Todo{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Completed: d.Completed,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// Repository reads and writes todos in the store's collection.
type Repository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewRepository returns a Repository over the store's todo collection.
func NewRepository(s *Store) *Repository {
	return &Repository{coll: s.collection, now: now}
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string { return "todo-store" }

// HealthCheck implements ports.HealthChecker.
func (r *Repository) HealthCheck(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, nil)
}

// List runs the page query and the count concurrently.
func (r *Repository) List(ctx context.Context, q todo.ListQuery) ([]todo.Todo, int64, error) {
	q = q.Normalize()
	filter := buildFilter(q)

	var (
		docs  []document
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cur, err := r.coll.Find(gctx, filter, findOptions(q))
		if err != nil {
			return fmt.Errorf("finding todos: %w", err)
		}
		if err := cur.All(gctx, &docs); err != nil {
			return fmt.Errorf("decoding todos: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		n, err := r.coll.CountDocuments(gctx, filter)
		if err != nil {
			return fmt.Errorf("counting todos: %w", err)
		}
		total = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	items := make([]todo.Todo, 0, len(docs))
	for i := range docs {
		items = append(items, *docs[i].toDomain())
	}
	return items, total, nil
}

// Get returns one todo by hex ObjectID.
func (r *Repository) Get(ctx context.Context, id string) (*todo.Todo, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc document
	err = r.coll.FindOne(ctx, bson.D{{Key: fieldID, Value: oid}}).Decode(&doc)
	if err != nil {
		return nil, mapError(id, err)
	}
	return doc.toDomain(), nil
}

// Create inserts a new todo.
func (r *Repository) Create(ctx context.Context, title string) (*todo.Todo, error) {
	ts := r.now()
	doc := document{
		ID:        primitive.NewObjectID(),
		Title:     title,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, mapError("", err)
	}
	return doc.toDomain(), nil
}

// UpdateTitle sets the title and refreshes updatedAt.
func (r *Repository) UpdateTitle(ctx context.Context, id, title string) (*todo.Todo, error) {
	return r.set(ctx, id, bson.D{{Key: fieldTitle, Value: title}})
}

// UpdateStatus sets the completed flag and refreshes updatedAt.
func (r *Repository) UpdateStatus(ctx context.Context, id string, completed bool) (*todo.Todo, error) {
	return r.set(ctx, id, bson.D{{Key: fieldCompleted, Value: completed}})
}

// Delete removes one todo.
func (r *Repository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: fieldID, Value: oid}})
	if err != nil {
		return mapError(id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("todo %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// set applies fields plus updatedAt and returns the post-update document.
func (r *Repository) set(ctx context.Context, id string, fields bson.D) (*todo.Todo, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	fields = append(fields, bson.E{Key: fieldUpdatedAt, Value: r.now()})
	update := bson.D{{Key: "$set", Value: fields}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc document
	err = r.coll.FindOneAndUpdate(ctx, bson.D{{Key: fieldID, Value: oid}}, update, opts).Decode(&doc)
	if err != nil {
		return nil, mapError(id, err)
	}
	return doc.toDomain(), nil
}

// buildFilter translates a normalized query into a collection filter. The
// text filter is matched literally and case-insensitively.
func buildFilter(q todo.ListQuery) bson.D {
	filter := bson.D{}
	if q.Filter != "" {
		filter = append(filter, bson.E{Key: fieldTitle, Value: primitive.Regex{
			Pattern: regexp.QuoteMeta(q.Filter),
			Options: "i",
		}})
	}
	if c := q.Status.Completed(); c != nil {
		filter = append(filter, bson.E{Key: fieldCompleted, Value: *c})
	}
	return filter
}

// findOptions sorts newest first with a stable tie-break and applies paging.
func findOptions(q todo.ListQuery) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{
			{Key: fieldUpdatedAt, Value: -1},
			{Key: fieldCreatedAt, Value: -1},
			{Key: fieldID, Value: 1},
		}).
		SetSkip(int64(q.Skip())).
		SetLimit(int64(q.PageSize))
}

// objectID parses a hex id. Malformed ids cannot name a stored todo, so they
// are reported as not found.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("todo %q: %w", id, domain.ErrNotFound)
	}
	return oid, nil
}

// mapError converts driver errors to domain errors.
func mapError(id string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("todo %s: %w", id, domain.ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return todo.ErrTitleTaken()
	case mongo.IsTimeout(err), mongo.IsNetworkError(err):
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	default:
		return err
	}
}
