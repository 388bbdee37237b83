package faraid

import "testing"

func TestGCD(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{12, 8, 4},
		{8, 12, 4},
		{7, 5, 1},
		{0, 5, 5},
		{6, 6, 6},
	}
	for _, c := range cases {
		if got := gcd(c.a, c.b); got != c.want {
			t.Errorf("gcd(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestLCM(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{4, 6, 12},
		{3, 4, 12},
		{5, 5, 5},
		{6, 8, 24},
	}
	for _, c := range cases {
		if got := lcm(c.a, c.b); got != c.want {
			t.Errorf("lcm(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestLCMMultiple(t *testing.T) {
	if got := lcmMultiple([]int64{2, 3, 4}); got != 12 {
		t.Errorf("lcmMultiple([2,3,4]) = %d, want 12", got)
	}
	if got := lcmMultiple([]int64{6, 4, 3}); got != 12 {
		t.Errorf("lcmMultiple([6,4,3]) = %d, want 12", got)
	}
	if got := lcmMultiple(nil); got != 1 {
		t.Errorf("lcmMultiple(nil) = %d, want 1", got)
	}
}

func TestSimplifyFraction(t *testing.T) {
	n, d := simplifyFraction(8, 12)
	if n != 2 || d != 3 {
		t.Errorf("simplifyFraction(8, 12) = %d/%d, want 2/3", n, d)
	}
	n, d = simplifyFraction(0, 6)
	if n != 0 || d != 1 {
		t.Errorf("simplifyFraction(0, 6) = %d/%d, want 0/1", n, d)
	}
}

func TestFractionString(t *testing.T) {
	if got := fractionString(8, 12); got != "2/3" {
		t.Errorf("fractionString(8, 12) = %q, want %q", got, "2/3")
	}
	if got := fractionString(6, 6); got != "1" {
		t.Errorf("fractionString(6, 6) = %q, want %q", got, "1")
	}
}
