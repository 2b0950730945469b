package duration

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestToDuration(t *testing.T) {
	d, err := ToDuration(4, 5, 19)
	if err != nil {
		t.Fatalf("ToDuration() error: %v", err)
	}
	if Seconds(d) != 14719 {
		t.Errorf("ToDuration(4, 5, 19) = %ds, want 14719s", Seconds(d))
	}

	if _, err := ToDuration(0, -1, 0); !errors.Is(err, ErrNegative) {
		t.Errorf("ToDuration(negative) error = %v, want ErrNegative", err)
	}

	for _, in := range [][3]int{
		{math.MaxInt, 0, 0},
		{3_000_000_000, 0, 0},
		{0, 0, math.MaxInt},
		{2_562_047, 47, 17},
	} {
		if _, err := ToDuration(in[0], in[1], in[2]); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("ToDuration(%d, %d, %d) error = %v, want ErrOutOfRange", in[0], in[1], in[2], err)
		}
	}

	d, err = ToDuration(2_562_047, 47, 16)
	if err != nil {
		t.Fatalf("ToDuration(max) error: %v", err)
	}
	if d <= 0 || Seconds(d) != 9_223_372_036 {
		t.Errorf("ToDuration(max) = %ds, want 9223372036s", Seconds(d))
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		h, m, s int
		opts    Options
		want    string
	}{
		{0, 0, 0, Options{}, "00:00"},
		{0, 0, 9, Options{}, "00:09"},
		{0, 5, 9, Options{}, "05:09"},
		{4, 5, 19, Options{}, "04:05:19"},
		{135, 59, 1, Options{}, "135:59:01"},
		{0, 5, 9, Options{IncludeHoursAlways: true}, "00:05:09"},
		{0, 0, 0, Options{IncludeHoursAlways: true}, "00:00:00"},
	}

	for _, tt := range tests {
		d, err := ToDuration(tt.h, tt.m, tt.s)
		if err != nil {
			t.Fatalf("ToDuration() error: %v", err)
		}
		if got := Format(d, tt.opts); got != tt.want {
			t.Errorf("Format(%v, %+v) = %q, want %q", d, tt.opts, got, tt.want)
		}
	}
}

func TestFormatPace(t *testing.T) {
	if got := FormatPace(341 * time.Second); got != "5:41" {
		t.Errorf("FormatPace(341s) = %q, want %q", got, "5:41")
	}
	if got := FormatPace(549 * time.Second); got != "9:09" {
		t.Errorf("FormatPace(549s) = %q, want %q", got, "9:09")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"4:00:00", 4 * time.Hour, false},
		{"04:05:19", 14719 * time.Second, false},
		{"9999999999:00:00", 0, true},
		{"5:41", 341 * time.Second, false},
		{"90", 90 * time.Second, false},
		{"3h30m", 3*time.Hour + 30*time.Minute, false},
		{"", 0, true},
		{"1:2:3:4", 0, true},
		{"ab:cd", 0, true},
		{"-5:00", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) expected error, got %v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
