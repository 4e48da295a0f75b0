package impl

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListView_CompleteInstallsFreshFetch(t *testing.T) {
	view := &listView[string]{}

	gen := view.begin()
	installed := view.complete(gen, []string{"a", "b"})

	assert.True(t, installed)
	assert.Equal(t, []string{"a", "b"}, view.snapshot())
}

func TestListView_StaleFetchIsDiscarded(t *testing.T) {
	view := &listView[string]{}

	stale := view.begin()
	fresh := view.begin()
	require.True(t, view.complete(fresh, []string{"fresh"}))

	installed := view.complete(stale, []string{"stale"})

	assert.False(t, installed)
	assert.Equal(t, []string{"fresh"}, view.snapshot())
}

func TestListView_MutationSupersedesInFlightFetch(t *testing.T) {
	view := &listView[string]{}
	gen := view.begin()
	require.True(t, view.complete(gen, []string{"a", "b", "c"}))

	// A fetch starts, then the user deletes "b" before it returns.
	inFlight := view.begin()
	_ = view.mutate(func(items []string) []string {
		return removeWhere(items, func(s string) bool { return s == "b" })
	})

	// The pre-mutation fetch result must not resurrect "b".
	installed := view.complete(inFlight, []string{"a", "b", "c"})

	assert.False(t, installed)
	assert.Equal(t, []string{"a", "c"}, view.snapshot())
}

func TestCommitMutation_KeepsChangeOnSuccess(t *testing.T) {
	view := &listView[string]{items: []string{"a", "b"}}

	err := commitMutation(view, func(items []string) []string {
		return removeWhere(items, func(s string) bool { return s == "a" })
	}, func() error { return nil })

	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, view.snapshot())
}

func TestCommitMutation_RollsBackOnFailure(t *testing.T) {
	view := &listView[string]{items: []string{"a", "b"}}

	err := commitMutation(view, func(items []string) []string {
		return removeWhere(items, func(s string) bool { return s == "a" })
	}, func() error { return errors.New("backend refused") })

	require.Error(t, err)
	assert.Equal(t, []string{"a", "b"}, view.snapshot())
}

func TestCommitMutation_RollbackInvalidatesOlderFetches(t *testing.T) {
	view := &listView[string]{items: []string{"a"}}
	inFlight := view.begin()

	_ = commitMutation(view, func(items []string) []string {
		return append(items, "b")
	}, func() error { return errors.New("backend refused") })

	assert.False(t, view.complete(inFlight, []string{"zombie"}))
	assert.Equal(t, []string{"a"}, view.snapshot())
}

func TestViewSet_SeparatesPrincipals(t *testing.T) {
	set := &viewSet[string]{}

	set.view("a@example.com").complete(set.view("a@example.com").begin(), []string{"mine"})

	assert.Equal(t, []string{"mine"}, set.view("a@example.com").snapshot())
	assert.Empty(t, set.view("b@example.com").snapshot())
	assert.Same(t, set.view("a@example.com"), set.view("a@example.com"))
}
