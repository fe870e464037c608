package handlers

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestParseBreakField(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"", 0, true},
		{"0", 0, true},
		{"30", 30, true},
		{"480", 480, true},
		{"481", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseBreakField(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("parseBreakField(%q) = %d, %v; want %d, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestYearRange(t *testing.T) {
	got := yearRange(2025)
	want := []int{2025, 2026, 2027, 2028, 2029}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("yearRange(2025) = %v, want %v", got, want)
		}
	}
}

func TestEntryFromForm(t *testing.T) {
	h := &EntriesHandler{}

	cases := []struct {
		name    string
		form    url.Values
		wantErr bool
		breaks  int
	}{
		{
			name: "short shift gets the 15 minute break",
			form: url.Values{
				"date":       {"2025-06-02"},
				"start_time": {"08:00"},
				"end_time":   {"12:00"},
			},
			breaks: 15,
		},
		{
			name: "long shift gets the 30 minute break",
			form: url.Values{
				"date":       {"2025-06-02"},
				"start_time": {"08:00"},
				"end_time":   {"16:30"},
			},
			breaks: 30,
		},
		{
			name: "no_break overrides the computed break",
			form: url.Values{
				"date":       {"2025-06-02"},
				"start_time": {"08:00"},
				"end_time":   {"16:30"},
				"no_break":   {"on"},
			},
			breaks: 0,
		},
		{
			name: "bad date rejected",
			form: url.Values{
				"date":       {"02.06.2025"},
				"start_time": {"08:00"},
				"end_time":   {"16:00"},
			},
			wantErr: true,
		},
		{
			name: "bad start time rejected",
			form: url.Values{
				"date":       {"2025-06-02"},
				"start_time": {"late"},
				"end_time":   {"16:00"},
			},
			wantErr: true,
		},
		{
			name: "oversized break rejected",
			form: url.Values{
				"date":          {"2025-06-02"},
				"start_time":    {"08:00"},
				"end_time":      {"16:00"},
				"break_minutes": {"600"},
			},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/entries", strings.NewReader(tc.form.Encode()))
			r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			if err := r.ParseForm(); err != nil {
				t.Fatal(err)
			}

			entry, msg := h.entryFromForm(r)
			if tc.wantErr {
				if entry != nil {
					t.Fatalf("expected rejection, got entry %+v", entry)
				}
				if msg == "" {
					t.Fatal("rejection should carry a message")
				}
				return
			}
			if entry == nil {
				t.Fatalf("unexpected rejection: %s", msg)
			}
			if entry.BreakMinutes != tc.breaks {
				t.Fatalf("break = %d, want %d", entry.BreakMinutes, tc.breaks)
			}
		})
	}
}
