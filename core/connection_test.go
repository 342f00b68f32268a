package core_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/directdb/directdb/core"
	"github.com/directdb/directdb/core/mock"
)

func TestNewConnection_AssignsID(t *testing.T) {
	r := require.New(t)

	store := mock.NewStore(nil)
	params := &core.ConnectionParams{Name: "{{ env `DIRECTDB_TEST_NAME` }}", Type: "mock"}
	t.Setenv("DIRECTDB_TEST_NAME", "local")

	c, err := core.NewConnection(params, mock.NewAdapter(store))
	r.NoError(err)

	_, err = uuid.Parse(string(c.GetID()))
	r.NoError(err)
	r.Equal("local", c.GetName())
	r.Equal("mock", c.GetType())
	r.Same(params, c.GetParams())
}

func TestNewConnection_KeepsID(t *testing.T) {
	c, err := core.NewConnection(&core.ConnectionParams{ID: "fixed"}, mock.NewAdapter(mock.NewStore(nil)))
	require.NoError(t, err)
	require.Equal(t, core.ConnectionID("fixed"), c.GetID())
}

func TestConnection_PromotesStore(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()

	rows := mock.NewRows(0, 3)
	store := mock.NewStore(rows, mock.StoreWithResultStreamOpts(
		mock.ResultStreamWithHeader(core.Header{"id", "name"}),
	))

	c, err := core.NewConnection(&core.ConnectionParams{}, mock.NewAdapter(store))
	r.NoError(err)

	r.NoError(c.Connect(ctx))
	r.NoError(c.CreateTable(ctx, core.NewTable("users", core.Column{Name: "id", Type: "integer"})))

	n, err := c.Insert(ctx, "users", core.Fields{core.F("id", 1)})
	r.NoError(err)
	r.EqualValues(1, n)

	result, err := c.Fetch(ctx, "users")
	r.NoError(err)
	r.Equal(core.Header{"id", "name"}, result.Header())
	r.Equal(rows, result.All())

	result, err = c.FetchElement(ctx, "users", "1", "id")
	r.NoError(err)
	r.Equal(3, result.Len())

	r.Equal([]string{"connect ", "create users", "insert users", "fetch users", "fetch_element users"}, store.Calls())
}

// bareStore hides the FetchElement method of the mock.
type bareStore struct{ core.Store }

func TestConnection_FetchElementNotSupported(t *testing.T) {
	c, err := core.NewConnection(&core.ConnectionParams{}, mock.NewAdapter(bareStore{mock.NewStore(nil)}))
	require.NoError(t, err)

	_, err = c.FetchElement(context.Background(), "users", "a", "name")
	require.ErrorIs(t, err, core.ErrElementFetchNotSupported)
}

func TestConnection_DropTables(t *testing.T) {
	store := mock.NewStore(nil)
	c, err := core.NewConnection(&core.ConnectionParams{}, mock.NewAdapter(store))
	require.NoError(t, err)

	err = c.DropTables(context.Background(), "a", "b", "c")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"drop a", "drop b", "drop c"}, store.Calls())
}

func TestConnection_DropTablesError(t *testing.T) {
	wantErr := errors.New("permission denied")
	store := mock.NewStore(nil, mock.StoreWithSideEffect("drop", func(context.Context) error {
		return wantErr
	}))
	c, err := core.NewConnection(&core.ConnectionParams{}, mock.NewAdapter(store))
	require.NoError(t, err)

	err = c.DropTables(context.Background(), "a", "b")
	require.ErrorIs(t, err, core.ErrTable)
	require.ErrorIs(t, err, wantErr)
}

func TestConnection_DropTablesFailureDoesNotCancelOthers(t *testing.T) {
	wantErr := errors.New("permission denied")

	var (
		calls      atomic.Int32
		mu         sync.Mutex
		siblingErr []error
	)
	store := mock.NewStore(nil, mock.StoreWithSideEffect("drop", func(ctx context.Context) error {
		if calls.Add(1) == 1 {
			return wantErr
		}

		time.Sleep(20 * time.Millisecond)

		mu.Lock()
		siblingErr = append(siblingErr, ctx.Err())
		mu.Unlock()
		return nil
	}))
	c, err := core.NewConnection(&core.ConnectionParams{}, mock.NewAdapter(store))
	require.NoError(t, err)

	err = c.DropTables(context.Background(), "a", "b", "c")
	require.ErrorIs(t, err, wantErr)

	assert.Len(t, store.Calls(), 3)
	assert.Equal(t, []error{nil, nil}, siblingErr)
}
