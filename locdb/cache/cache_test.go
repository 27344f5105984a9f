package cache

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rotblauer/pintour/geo/tour"
	"github.com/rotblauer/pintour/testing/testdata"
)

func TestTourKey(t *testing.T) {
	a := testdata.Records("p", testdata.NewYork, testdata.London)
	b := testdata.Records("p", testdata.NewYork, testdata.London)
	ka, err := TourKey(a)
	if err != nil {
		t.Fatal(err)
	}
	kb, _ := TourKey(b)
	if ka != kb {
		t.Error("equal input should hash equal")
	}

	b[1].Description = "changed"
	if kb, _ = TourKey(b); ka == kb {
		t.Error("descriptions matter")
	}
	b = testdata.Records("p", testdata.NewYork, testdata.London)
	b[0].Timestamp = time.Unix(1734656400, 0)
	if kb, _ = TourKey(b); ka == kb {
		t.Error("timestamps matter")
	}
	b = testdata.Records("p", testdata.NewYork, testdata.London)
	b[0].UserRole = "moderator"
	if kb, _ = TourKey(b); ka == kb {
		t.Error("roles matter")
	}

	c := testdata.Records("p", testdata.London, testdata.NewYork)
	if kc, _ := TourKey(c); kc == ka {
		t.Error("order matters")
	}
	d := testdata.Records("p", testdata.NewYork, testdata.Paris)
	if kd, _ := TourKey(d); kd == ka {
		t.Error("coordinates matter")
	}
}

func TestNewTourCache(t *testing.T) {
	c := NewTourCache(50*time.Millisecond, 0)
	c.Set(1, &tour.Tour{Locations: 1}, 0)
	if item := c.Get(1); item == nil || item.Value().Locations != 1 {
		t.Fatal("expected cached tour")
	}
	time.Sleep(100 * time.Millisecond)
	if item := c.Get(1); item != nil {
		t.Error("expected expiry")
	}
}

func TestLastTour(t *testing.T) {
	SetLastTour(&tour.Tour{Locations: 7})
	if got := GetLastTour(); got == nil || got.Locations != 7 {
		t.Errorf("got %+v", got)
	}
}

func TestNewTourCache_Capacity(t *testing.T) {
	c := NewTourCache(time.Minute, 3)
	for i := uint64(0); i < 5; i++ {
		c.Set(i, &tour.Tour{Locations: int(i)}, ttlcache.DefaultTTL)
	}
	if c.Len() != 3 {
		t.Errorf("len: %d", c.Len())
	}
	if c.Get(0) != nil || c.Get(4) == nil {
		t.Error("oldest should be evicted first")
	}
}

func TestNewTourCache_StartDeletesExpired(t *testing.T) {
	c := NewTourCache(10*time.Millisecond, 0)
	var expired atomic.Int64
	c.OnEviction(func(_ context.Context, reason ttlcache.EvictionReason, _ *ttlcache.Item[uint64, *tour.Tour]) {
		if reason == ttlcache.EvictionReasonExpired {
			expired.Add(1)
		}
	})
	go c.Start()
	defer c.Stop()
	for i := uint64(0); i < 200; i++ {
		c.Set(i, &tour.Tour{}, ttlcache.DefaultTTL)
	}
	deadline := time.Now().Add(2 * time.Second)
	for expired.Load() < 200 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if n := expired.Load(); n != 200 {
		t.Errorf("expired tours deleted: %d of 200", n)
	}
}
