package schedule

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Frequency define las variantes de recurrencia soportadas.
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyMonFri Frequency = "monday-friday"
	FrequencyCustom Frequency = "custom"
)

// TimeOfDay define los momentos del día seleccionables.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeCustom    TimeOfDay = "custom"
)

// Schedule es el modelo de recurrencia compartido entre suplementos y
// péptidos. Valor inmutable: se valida una vez al construirse y después
// solo se lee. Los tags json son la forma persistida (JSONB).
type Schedule struct {
	Frequency   Frequency   `json:"frequency"`
	TimesPerDay int         `json:"times_per_day"`
	TimeOfDay   []TimeOfDay `json:"time_of_day"`

	// Ambos presentes o ambos ausentes; un borde de ciclo suelto no
	// significa nada. Cero es una longitud legal.
	CycleWeeksOn  *int `json:"cycle_weeks_on,omitempty"`
	CycleWeeksOff *int `json:"cycle_weeks_off,omitempty"`

	// Solo con sentido cuando Frequency == custom.
	CustomDays  []string `json:"custom_days,omitempty"`
	CustomTimes []string `json:"custom_times,omitempty"`
}

// Validate se corre una sola vez, al construir desde el form.
// custom_days/custom_times vacíos no se rechazan: el resumen degrada solo.
func (s Schedule) Validate() error {
	switch s.Frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonFri, FrequencyCustom:
	default:
		return fmt.Errorf("%w: unknown frequency %q", ErrInvalidInput, string(s.Frequency))
	}

	if s.TimesPerDay < 1 {
		return fmt.Errorf("%w: times_per_day must be at least 1", ErrInvalidInput)
	}

	if (s.CycleWeeksOn == nil) != (s.CycleWeeksOff == nil) {
		return fmt.Errorf("%w: cycle_weeks_on and cycle_weeks_off must be set together", ErrInvalidInput)
	}
	if s.CycleWeeksOn != nil {
		if *s.CycleWeeksOn < 0 {
			return fmt.Errorf("%w: cycle_weeks_on must not be negative", ErrInvalidInput)
		}
		if *s.CycleWeeksOff < 0 {
			return fmt.Errorf("%w: cycle_weeks_off must not be negative", ErrInvalidInput)
		}
	}

	return nil
}

// Summarize produce el texto humano de un schedule. Determinista y
// total: nunca falla, un frequency desconocido (registro viejo) se
// muestra tal cual en vez de romper la vista.
func Summarize(s *Schedule) string {
	if s == nil {
		return "Not specified"
	}

	var b strings.Builder

	switch s.Frequency {
	case FrequencyDaily:
		b.WriteString("Daily")
	case FrequencyWeekly:
		b.WriteString("Weekly")
	case FrequencyMonFri:
		b.WriteString("Mon-Fri")
	case FrequencyCustom:
		if len(s.CustomDays) > 0 {
			b.WriteString("Custom: ")
			b.WriteString(strings.Join(s.CustomDays, ","))
		} else {
			b.WriteString("Custom")
		}
	default:
		b.WriteString(string(s.Frequency))
	}

	fmt.Fprintf(&b, ", %dx/day", s.TimesPerDay)

	if s.CycleWeeksOn != nil && s.CycleWeeksOff != nil {
		fmt.Fprintf(&b, " (%d wk on, %d wk off)", *s.CycleWeeksOn, *s.CycleWeeksOff)
	}

	return b.String()
}

// FromForm construye y valida un Schedule desde los campos crudos del
// form. Acá se cruza la frontera: strings sueltos entran, sale un valor
// tipado o ErrInvalidInput. custom_days/custom_times llegan como texto
// separado por comas.
func FromForm(frequency string, timesPerDay int, timeOfDay []string, cycleOn, cycleOff *int, customDays, customTimes string) (Schedule, error) {
	tods := make([]TimeOfDay, 0, len(timeOfDay))
	for _, t := range timeOfDay {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		tods = append(tods, TimeOfDay(t))
	}
	if len(tods) == 0 {
		tods = nil
	}

	s := Schedule{
		Frequency:     Frequency(strings.TrimSpace(frequency)),
		TimesPerDay:   timesPerDay,
		TimeOfDay:     tods,
		CycleWeeksOn:  cycleOn,
		CycleWeeksOff: cycleOff,
		CustomDays:    ParseDayList(customDays),
		CustomTimes:   ParseTimeList(customTimes),
	}

	if err := s.Validate(); err != nil {
		return Schedule{}, err
	}
	return s, nil
}

// ParseDayList convierte el texto del form ("Mon, Wed,Fri") en la
// secuencia ordenada de tokens. Entradas vacías se descartan.
func ParseDayList(raw string) []string {
	return splitTrim(raw)
}

// ParseTimeList hace lo mismo para horarios custom ("08:00, 20:00").
func ParseTimeList(raw string) []string {
	return splitTrim(raw)
}

func splitTrim(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
