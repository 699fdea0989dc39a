package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourstory-app/ourstory/internal/common"
	"github.com/ourstory-app/ourstory/internal/journal"
)

func newTestService(t *testing.T, remote *fakeRemote) (*Service, *Dispatcher) {
	t.Helper()
	disp := NewDispatcher(testLogger(), 16)
	ctx, cancel := context.WithCancel(context.Background())
	disp.Start(ctx)
	t.Cleanup(func() {
		disp.Close()
		disp.Wait()
		cancel()
	})
	s := NewService(NewState(), testSnapshot(t), remote, disp, testLogger(), fixedNow)
	return s, disp
}

func TestService_AddRecordOptimistic(t *testing.T) {
	remote := &fakeRemote{}
	svc, disp := newTestService(t, remote)
	ctx := context.Background()

	r := journal.Record{Title: "Cena", Date: journal.NewDate(2024, 7, 15), Category: journal.CategoryFood}
	require.NoError(t, svc.AddRecord(ctx, r))

	// local state updated before the remote write resolves
	records := svc.State().Records()
	require.Len(t, records, 1)
	assert.NotEmpty(t, records[0].ID)

	disp.Close()
	disp.Wait()
	assert.Equal(t, []string{"record:" + records[0].ID}, remote.putNames())
}

func TestService_AddRecordInvalid(t *testing.T) {
	remote := &fakeRemote{}
	svc, _ := newTestService(t, remote)

	err := svc.AddRecord(context.Background(), journal.Record{Title: ""})
	require.Error(t, err)
	assert.Empty(t, svc.State().Records())
}

func TestService_DeleteRecordUnknown(t *testing.T) {
	svc, _ := newTestService(t, &fakeRemote{})

	err := svc.DeleteRecord(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestService_ToggleWishlistDraft(t *testing.T) {
	remote := &fakeRemote{}
	svc, _ := newTestService(t, remote)
	ctx := context.Background()

	item := journal.WishlistItem{Title: "Ruta en kayak", Category: journal.CategoryOuting}
	require.NoError(t, svc.AddWishlistItem(ctx, item))
	id := svc.State().Wishlist()[0].ID

	updated, draft, err := svc.ToggleWishlistItem(ctx, id)
	require.NoError(t, err)
	assert.True(t, updated.Done)
	require.NotNil(t, draft)
	assert.Equal(t, "Ruta en kayak", draft.Title)
	assert.Equal(t, journal.CategoryOuting, draft.Category)
	assert.True(t, journal.DateOf(fixedNow()).Equal(draft.Date))
	assert.NotEmpty(t, draft.ID)

	// toggling back yields no draft
	_, draft, err = svc.ToggleWishlistItem(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, draft)
}

func TestService_UpdateProfile(t *testing.T) {
	remote := &fakeRemote{}
	svc, disp := newTestService(t, remote)
	ctx := context.Background()

	anniversary := journal.NewDate(2022, 9, 25)
	svc.State().SetConfig(journal.SharedConfig{Name: "M & J", Anniversary: anniversary})

	require.NoError(t, svc.UpdateProfile(ctx, "Marta y Javi", "avatar-2"))

	cfg := svc.State().Config()
	assert.Equal(t, "Marta y Javi", cfg.Name)
	assert.Equal(t, "avatar-2", cfg.Avatar)
	assert.True(t, anniversary.Equal(cfg.Anniversary))

	disp.Close()
	disp.Wait()
	assert.Equal(t, []string{"config.merge"}, remote.putNames())

	// the merge carries only the mutable fields
	require.Len(t, remote.merges, 1)
	assert.Equal(t, map[string]any{"name": "Marta y Javi", "avatar": "avatar-2"}, remote.merges[0])
}

func TestService_UpdateProfileEmptyName(t *testing.T) {
	svc, _ := newTestService(t, &fakeRemote{})

	err := svc.UpdateProfile(context.Background(), "", "")
	require.Error(t, err)
}

func TestService_SubmitHighScore(t *testing.T) {
	remote := &fakeRemote{}
	svc, disp := newTestService(t, remote)
	ctx := context.Background()

	assert.True(t, svc.SubmitHighScore(ctx, 10))
	assert.Equal(t, 10, svc.State().HighScore().Record)

	// not a new record
	assert.False(t, svc.SubmitHighScore(ctx, 5))
	assert.Equal(t, 10, svc.State().HighScore().Record)

	disp.Close()
	disp.Wait()
	assert.Equal(t, []string{"meta"}, remote.putNames())
}

func TestDispatcher_FiresInEnqueueOrder(t *testing.T) {
	disp := NewDispatcher(testLogger(), 16)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	disp.Start(ctx)

	fired := make(chan int, 3)
	for i := 0; i < 3; i++ {
		i := i
		disp.Enqueue(Op{Name: "op", Do: func(ctx context.Context) error {
			fired <- i
			return nil
		}})
	}
	disp.Close()
	disp.Wait()
	close(fired)

	var got []int
	for v := range fired {
		got = append(got, v)
	}
	assert.ElementsMatch(t, []int{0, 1, 2}, got)
}
