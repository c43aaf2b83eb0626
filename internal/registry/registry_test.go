package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"courier-agent/internal/domain"
	"courier-agent/internal/logx"
	"courier-agent/internal/registry"
)

func delivery(id int64, status domain.Status) domain.Delivery {
	return domain.Delivery{ID: id, Status: status}
}

func TestReplace_SwapsWholeCollection(t *testing.T) {
	t.Parallel()

	r := registry.New(logx.Nop())
	r.Replace([]domain.Delivery{delivery(1, domain.StatusPending), delivery(2, domain.StatusPreparing)})
	r.Replace([]domain.Delivery{delivery(3, domain.StatusDelivered)})

	all := r.All()
	require.Len(t, all, 1)
	require.Equal(t, int64(3), all[0].ID)

	_, ok := r.Get(1)
	require.False(t, ok)
}

func TestReplace_EmptyResultYieldsEmptyRegistry(t *testing.T) {
	t.Parallel()

	r := registry.New(logx.Nop())
	r.Replace([]domain.Delivery{delivery(1, domain.StatusPending)})
	r.Replace(nil)

	require.Empty(t, r.All())
	require.Equal(t, registry.StatusCounts{}, r.CountsByStatus())
}

func TestApplyStatusUpdate_ReplacesMatchingEntry(t *testing.T) {
	t.Parallel()

	r := registry.New(logx.Nop())
	r.Replace([]domain.Delivery{delivery(501, domain.StatusPreparing), delivery(502, domain.StatusPending)})

	r.ApplyStatusUpdate(delivery(501, domain.StatusOutForDelivery))

	got, ok := r.Get(501)
	require.True(t, ok)
	require.Equal(t, domain.StatusOutForDelivery, got.Status)

	other, _ := r.Get(502)
	require.Equal(t, domain.StatusPending, other.Status)
}

func TestApplyStatusUpdate_UnknownIDIsLoggedNotFatal(t *testing.T) {
	t.Parallel()

	r := registry.New(logx.Nop())
	r.Replace([]domain.Delivery{delivery(501, domain.StatusPreparing)})

	r.ApplyStatusUpdate(delivery(999, domain.StatusDelivered))

	require.Len(t, r.All(), 1)
	_, ok := r.Get(999)
	require.False(t, ok)
}

func TestAll_OrderedByID(t *testing.T) {
	t.Parallel()

	r := registry.New(logx.Nop())
	r.Replace([]domain.Delivery{
		delivery(30, domain.StatusPending),
		delivery(10, domain.StatusPending),
		delivery(20, domain.StatusPending),
	})

	all := r.All()
	require.Equal(t, int64(10), all[0].ID)
	require.Equal(t, int64(20), all[1].ID)
	require.Equal(t, int64(30), all[2].ID)
}

func TestFilter_DoesNotMutateBacking(t *testing.T) {
	t.Parallel()

	r := registry.New(logx.Nop())
	r.Replace([]domain.Delivery{
		delivery(1, domain.StatusPreparing),
		delivery(2, domain.StatusDelivered),
	})

	done := r.Filter(func(d domain.Delivery) bool { return d.Status == domain.StatusDelivered })
	require.Len(t, done, 1)
	require.Len(t, r.All(), 2)
}

func TestSearch_MatchesOrderCodeAndCustomerName(t *testing.T) {
	t.Parallel()

	d1 := domain.Delivery{ID: 1, Order: domain.Order{OrderCode: "ORD-088"}}
	d2 := domain.Delivery{ID: 2, Order: domain.Order{
		OrderCode: "ORD-099",
		Customer:  &domain.Customer{FirstName: "Noy", LastName: "Chan"},
	}}

	r := registry.New(logx.Nop())
	r.Replace([]domain.Delivery{d1, d2})

	require.Len(t, r.Search("088"), 1)
	require.Len(t, r.Search("noy ch"), 1)
	require.Len(t, r.Search("ord-"), 2)
	require.Empty(t, r.Search("nobody"))
	require.Len(t, r.Search("  "), 2, "blank query returns everything")
}

func TestCountsByStatus_OnePassBuckets(t *testing.T) {
	t.Parallel()

	r := registry.New(logx.Nop())
	r.Replace([]domain.Delivery{
		delivery(1, domain.StatusPending),
		delivery(2, domain.StatusPreparing),
		delivery(3, domain.StatusOutForDelivery),
		delivery(4, domain.StatusDelivered),
		delivery(5, domain.StatusDelivered),
		delivery(6, domain.StatusCancelled),
	})

	counts := r.CountsByStatus()
	require.Equal(t, 2, counts.Preparing, "pending folds into preparing")
	require.Equal(t, 1, counts.OutForDelivery)
	require.Equal(t, 2, counts.Delivered)
}

func TestSubscribe_ReceivesEventsInOrder(t *testing.T) {
	t.Parallel()

	r := registry.New(logx.Nop())

	var events []registry.Event
	unsubscribe := r.Subscribe(func(ev registry.Event) { events = append(events, ev) })

	r.Replace([]domain.Delivery{delivery(501, domain.StatusPreparing)})
	r.ApplyStatusUpdate(delivery(501, domain.StatusOutForDelivery))

	require.Len(t, events, 2)
	require.Equal(t, registry.EventReplaced, events[0].Kind)
	require.Equal(t, registry.EventUpdated, events[1].Kind)
	require.Equal(t, int64(501), events[1].DeliveryID)

	unsubscribe()
	r.Replace(nil)
	require.Len(t, events, 2, "no events after unsubscribe")
}

func TestSubscribe_UnknownUpdateEmitsNothing(t *testing.T) {
	t.Parallel()

	r := registry.New(logx.Nop())

	var events []registry.Event
	defer r.Subscribe(func(ev registry.Event) { events = append(events, ev) })()

	r.ApplyStatusUpdate(delivery(999, domain.StatusDelivered))
	require.Empty(t, events)
}
