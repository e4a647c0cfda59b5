package site

import (
	"testing"
	"time"
)

func TestRateLimiterAllows(t *testing.T) {
	l := NewRateLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Fatal("fourth attempt should be blocked")
	}
}

func TestRateLimiterPerIP(t *testing.T) {
	l := NewRateLimiter(1, time.Minute)
	if !l.Allow("1.1.1.1") {
		t.Fatal("first IP should be allowed")
	}
	if !l.Allow("2.2.2.2") {
		t.Fatal("second IP should be allowed independently")
	}
	if l.Allow("1.1.1.1") {
		t.Fatal("first IP should now be blocked")
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	l := NewRateLimiter(1, 10*time.Millisecond)
	if !l.Allow("1.2.3.4") {
		t.Fatal("first attempt should be allowed")
	}
	if l.Allow("1.2.3.4") {
		t.Fatal("second attempt should be blocked")
	}
	time.Sleep(20 * time.Millisecond)
	if !l.Allow("1.2.3.4") {
		t.Fatal("attempt after window expiry should be allowed")
	}
}

func TestRateLimiterCheckDoesNotRecord(t *testing.T) {
	l := NewRateLimiter(1, time.Minute)
	for i := 0; i < 5; i++ {
		if !l.Check("1.2.3.4") {
			t.Fatal("Check alone should never consume the budget")
		}
	}
	l.Record("1.2.3.4")
	if l.Check("1.2.3.4") {
		t.Fatal("Check should report blocked after Record")
	}
}
