package mongo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jsamuelsen11/todo-service/internal/domain"
	"github.com/jsamuelsen11/todo-service/internal/domain/todo"
)

func TestBuildFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query todo.ListQuery
		want  bson.D
	}{
		{
			name:  "everything",
			query: todo.DefaultListQuery(),
			want:  bson.D{},
		},
		{
			name:  "filter is quoted and case-insensitive",
			query: todo.ListQuery{Filter: "buy (2) milk?", Status: todo.StatusAll},
			want: bson.D{{Key: "title", Value: primitive.Regex{
				Pattern: `buy \(2\) milk\?`,
				Options: "i",
			}}},
		},
		{
			name:  "completed",
			query: todo.ListQuery{Status: todo.StatusCompleted},
			want:  bson.D{{Key: "completed", Value: true}},
		},
		{
			name:  "active with filter",
			query: todo.ListQuery{Filter: "dog", Status: todo.StatusActive},
			want: bson.D{
				{Key: "title", Value: primitive.Regex{Pattern: "dog", Options: "i"}},
				{Key: "completed", Value: false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, buildFilter(tt.query.Normalize()))
		})
	}
}

func TestFindOptions_Paging(t *testing.T) {
	t.Parallel()

	opts := findOptions(todo.ListQuery{Page: 3, PageSize: 5})

	require.NotNil(t, opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(10), *opts.Skip)
	assert.Equal(t, int64(5), *opts.Limit)

	sort, ok := opts.Sort.(bson.D)
	require.True(t, ok)
	assert.Equal(t, bson.E{Key: "updatedAt", Value: -1}, sort[0])
}

func TestObjectID_MalformedIsNotFound(t *testing.T) {
	t.Parallel()

	_, err := objectID("not-an-object-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	oid := primitive.NewObjectID()
	got, err := objectID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, got)
}

func TestMapError(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, mapError("x", mongo.ErrNoDocuments), domain.ErrNotFound)

	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key"}}}
	var verr *domain.ValidationError
	require.ErrorAs(t, mapError("", dup), &verr)
	assert.Equal(t, todo.MsgTitleTaken, verr.Fields["title"])

	other := errors.New("boom")
	assert.Equal(t, other, mapError("x", other))
}

func TestDocument_ToDomain(t *testing.T) {
	t.Parallel()

	oid := primitive.NewObjectID()
	d := document{ID: oid, Title: "Water the plants", Completed: true}

	got := d.toDomain()
	assert.Equal(t, oid.Hex(), got.ID)
	assert.Equal(t, "Water the plants", got.Title)
	assert.True(t, got.Completed)
}
