package schedule

import (
	"errors"
	"reflect"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestSummarize(t *testing.T) {
	cases := []struct {
		name string
		in   *Schedule
		want string
	}{
		{
			name: "sin schedule",
			in:   nil,
			want: "Not specified",
		},
		{
			name: "daily simple",
			in:   &Schedule{Frequency: FrequencyDaily, TimesPerDay: 1},
			want: "Daily, 1x/day",
		},
		{
			name: "weekly",
			in:   &Schedule{Frequency: FrequencyWeekly, TimesPerDay: 1},
			want: "Weekly, 1x/day",
		},
		{
			name: "monday-friday",
			in:   &Schedule{Frequency: FrequencyMonFri, TimesPerDay: 3},
			want: "Mon-Fri, 3x/day",
		},
		{
			name: "custom con días y ciclo",
			in: &Schedule{
				Frequency:     FrequencyCustom,
				TimesPerDay:   2,
				CustomDays:    []string{"Mon", "Wed", "Fri"},
				CycleWeeksOn:  intPtr(4),
				CycleWeeksOff: intPtr(2),
			},
			want: "Custom: Mon,Wed,Fri, 2x/day (4 wk on, 2 wk off)",
		},
		{
			name: "custom sin días degrada",
			in:   &Schedule{Frequency: FrequencyCustom, TimesPerDay: 1},
			want: "Custom, 1x/day",
		},
		{
			name: "ciclo con cero semanas igual se muestra",
			in: &Schedule{
				Frequency:     FrequencyDaily,
				TimesPerDay:   1,
				CycleWeeksOn:  intPtr(0),
				CycleWeeksOff: intPtr(0),
			},
			want: "Daily, 1x/day (0 wk on, 0 wk off)",
		},
		{
			name: "frequency desconocido se muestra tal cual",
			in:   &Schedule{Frequency: "biweekly", TimesPerDay: 1},
			want: "biweekly, 1x/day",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Summarize(tc.in)
			if got != tc.want {
				t.Errorf("Summarize() = %q, want %q", got, tc.want)
			}
			// Referencialmente transparente: segunda llamada idéntica
			if again := Summarize(tc.in); again != got {
				t.Errorf("Summarize no es determinista: %q vs %q", got, again)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		in      Schedule
		wantErr bool
	}{
		{
			name: "daily válido",
			in:   Schedule{Frequency: FrequencyDaily, TimesPerDay: 1, TimeOfDay: []TimeOfDay{TimeMorning}},
		},
		{
			name: "time_of_day vacío es legal",
			in:   Schedule{Frequency: FrequencyWeekly, TimesPerDay: 2},
		},
		{
			name: "ciclo completo válido",
			in: Schedule{
				Frequency:     FrequencyCustom,
				TimesPerDay:   1,
				CustomDays:    []string{"Mon"},
				CycleWeeksOn:  intPtr(4),
				CycleWeeksOff: intPtr(2),
			},
		},
		{
			name: "ciclo en cero válido",
			in: Schedule{
				Frequency:     FrequencyDaily,
				TimesPerDay:   1,
				CycleWeeksOn:  intPtr(0),
				CycleWeeksOff: intPtr(0),
			},
		},
		{
			name: "custom sin días no se rechaza",
			in:   Schedule{Frequency: FrequencyCustom, TimesPerDay: 1},
		},
		{
			name:    "frequency desconocido",
			in:      Schedule{Frequency: "fortnightly", TimesPerDay: 1},
			wantErr: true,
		},
		{
			name:    "times_per_day cero",
			in:      Schedule{Frequency: FrequencyDaily, TimesPerDay: 0},
			wantErr: true,
		},
		{
			name:    "solo cycle_weeks_on",
			in:      Schedule{Frequency: FrequencyDaily, TimesPerDay: 1, CycleWeeksOn: intPtr(4)},
			wantErr: true,
		},
		{
			name:    "solo cycle_weeks_off",
			in:      Schedule{Frequency: FrequencyDaily, TimesPerDay: 1, CycleWeeksOff: intPtr(2)},
			wantErr: true,
		},
		{
			name: "ciclo negativo",
			in: Schedule{
				Frequency:     FrequencyDaily,
				TimesPerDay:   1,
				CycleWeeksOn:  intPtr(-1),
				CycleWeeksOff: intPtr(2),
			},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestFromForm(t *testing.T) {
	t.Run("custom completo", func(t *testing.T) {
		s, err := FromForm("custom", 2, []string{"morning", " evening "}, intPtr(4), intPtr(2), "Mon, Wed,Fri", "08:00,20:00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Frequency != FrequencyCustom {
			t.Errorf("frequency = %q", s.Frequency)
		}
		if !reflect.DeepEqual(s.TimeOfDay, []TimeOfDay{TimeMorning, TimeEvening}) {
			t.Errorf("time_of_day = %v", s.TimeOfDay)
		}
		if !reflect.DeepEqual(s.CustomDays, []string{"Mon", "Wed", "Fri"}) {
			t.Errorf("custom_days = %v", s.CustomDays)
		}
		if got := Summarize(&s); got != "Custom: Mon,Wed,Fri, 2x/day (4 wk on, 2 wk off)" {
			t.Errorf("summary = %q", got)
		}
	})

	t.Run("frequency con espacios", func(t *testing.T) {
		s, err := FromForm(" daily ", 1, nil, nil, nil, "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Frequency != FrequencyDaily {
			t.Errorf("frequency = %q", s.Frequency)
		}
	})

	t.Run("inválido no devuelve valor a medias", func(t *testing.T) {
		s, err := FromForm("daily", 0, nil, nil, nil, "", "")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
		if !reflect.DeepEqual(s, Schedule{}) {
			t.Errorf("expected zero Schedule, got %+v", s)
		}
	})
}

func TestParseDayList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Mon,Wed,Fri", []string{"Mon", "Wed", "Fri"}},
		{" Mon , Wed ,Fri ", []string{"Mon", "Wed", "Fri"}},
		{"Mon,,Fri", []string{"Mon", "Fri"}},
		{"", nil},
		{"  ,  , ", nil},
		{"Sat", []string{"Sat"}},
	}
	for _, tc := range cases {
		if got := ParseDayList(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseDayList(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseTimeList(t *testing.T) {
	got := ParseTimeList("08:00, 14:30 ,22:00")
	want := []string{"08:00", "14:30", "22:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseTimeList = %v, want %v", got, want)
	}
}
