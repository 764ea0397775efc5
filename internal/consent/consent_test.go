package consent

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// memPersistence is an in-memory Persistence for tests.
type memPersistence struct {
	value   string
	has     bool
	saveErr error
}

func (m *memPersistence) Load() (string, bool) { return m.value, m.has }
func (m *memPersistence) Save(v string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.value, m.has = v, true
	return nil
}
func (m *memPersistence) Clear() error {
	m.value, m.has = "", false
	return nil
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		persist Persistence
		want    State
	}{
		{"nothing stored", &memPersistence{}, Denied},
		{"granted marker stored", &memPersistence{value: "true", has: true}, Granted},
		{"garbage stored", &memPersistence{value: "yes", has: true}, Denied},
		{"empty string stored", &memPersistence{value: "", has: true}, Denied},
		{"no persistence at all", nil, Denied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(tt.persist)
			if got := s.Current(); got != Unknown {
				t.Fatalf("before resolve: state = %v, want Unknown", got)
			}
			if got := s.Resolve(); got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	p := &memPersistence{}
	s := NewStore(p)
	s.Resolve()
	s.Grant()

	// A second Resolve must not re-read persistence and clobber the
	// granted state.
	p.value, p.has = "", false
	if got := s.Resolve(); got != Granted {
		t.Errorf("second Resolve() = %v, want Granted", got)
	}
}

func TestGrantPersistsBeforeStateChange(t *testing.T) {
	p := &memPersistence{}
	s := NewStore(p)
	s.Resolve()

	var persistedAtNotify string
	s.Subscribe(func(State) {
		persistedAtNotify = p.value
	})

	s.Grant()

	if persistedAtNotify != GrantedMarker {
		t.Errorf("marker not persisted before observers ran: %q", persistedAtNotify)
	}

	// A fresh store over the same persistence resolves Granted.
	fresh := NewStore(p)
	if got := fresh.Resolve(); got != Granted {
		t.Errorf("fresh Resolve() after Grant = %v, want Granted", got)
	}
}

func TestRevokeClearsPersistence(t *testing.T) {
	p := &memPersistence{value: "true", has: true}
	s := NewStore(p)
	if got := s.Resolve(); got != Granted {
		t.Fatalf("Resolve() = %v, want Granted", got)
	}

	s.Revoke()

	if p.has {
		t.Error("persisted marker not cleared by Revoke")
	}
	fresh := NewStore(p)
	if got := fresh.Resolve(); got != Denied {
		t.Errorf("fresh Resolve() after Revoke = %v, want Denied", got)
	}
}

func TestGrantFailsSoftWhenPersistenceBroken(t *testing.T) {
	p := &memPersistence{saveErr: errors.New("storage disabled")}
	s := NewStore(p)
	s.Resolve()

	s.Grant()

	// In-memory state still flips for the current session.
	if got := s.Current(); got != Granted {
		t.Errorf("Current() = %v, want Granted despite persistence error", got)
	}
}

func TestObserversFireOncePerTransition(t *testing.T) {
	s := NewStore(&memPersistence{})
	s.Resolve()

	var seen []State
	s.Subscribe(func(st State) { seen = append(seen, st) })

	s.Grant()
	s.Grant() // idempotent, no second notification
	s.Revoke()
	s.Revoke()

	want := []State{Granted, Denied}
	if len(seen) != len(want) {
		t.Fatalf("observer fired %d times, want %d (%v)", len(seen), len(want), seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("transition %d = %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestCookiePersistenceRoundTrip(t *testing.T) {
	// Grant writes a cookie.
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/consent/accept", nil)
	s := NewStore(NewCookiePersistence(w, r, false))
	s.Resolve()
	s.Grant()

	cookies := w.Result().Cookies()
	var grant *http.Cookie
	for _, c := range cookies {
		if c.Name == CookieName {
			grant = c
		}
	}
	if grant == nil || grant.Value != GrantedMarker {
		t.Fatalf("grant cookie not set: %+v", cookies)
	}

	// The next request carrying that cookie resolves Granted.
	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(&http.Cookie{Name: CookieName, Value: grant.Value})
	s2 := NewStore(NewCookiePersistence(httptest.NewRecorder(), r2, false))
	if got := s2.Resolve(); got != Granted {
		t.Errorf("Resolve() with grant cookie = %v, want Granted", got)
	}

	// Revoke expires the cookie.
	w3 := httptest.NewRecorder()
	s3 := NewStore(NewCookiePersistence(w3, r2, false))
	s3.Resolve()
	s3.Revoke()
	for _, c := range w3.Result().Cookies() {
		if c.Name == CookieName && c.MaxAge >= 0 {
			t.Errorf("revoke cookie not expired: MaxAge=%d", c.MaxAge)
		}
	}
}
