package entry

import (
	"errors"
	"strconv"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		activity  string
		duration  string
		intensity string
		want      Entry
		wantErr   error
		wantField string
	}{
		{
			name:     "valid entry",
			activity: "Run", duration: "30", intensity: "High",
			want: Entry{ActivityType: "Run", DurationMinutes: 30, Intensity: "High"},
		},
		{
			name:     "leading plus sign parses",
			activity: "Swim", duration: "+15", intensity: "Low",
			want: Entry{ActivityType: "Swim", DurationMinutes: 15, Intensity: "Low"},
		},
		{
			name:     "intensity outside the set is accepted",
			activity: "Yoga", duration: "60", intensity: "Baja",
			want: Entry{ActivityType: "Yoga", DurationMinutes: 60, Intensity: "Baja"},
		},
		{
			name:     "no trimming of activity",
			activity: " Run ", duration: "5", intensity: "Low",
			want: Entry{ActivityType: " Run ", DurationMinutes: 5, Intensity: "Low"},
		},
		{
			name:     "empty activity",
			activity: "", duration: "30", intensity: "High",
			wantErr: ErrMissingField, wantField: FieldActivityType,
		},
		{
			name:     "empty duration",
			activity: "Run", duration: "", intensity: "High",
			wantErr: ErrMissingField, wantField: FieldDuration,
		},
		{
			name:     "empty intensity",
			activity: "Run", duration: "30", intensity: "",
			wantErr: ErrMissingField, wantField: FieldIntensity,
		},
		{
			name:     "missing field wins over bad duration",
			activity: "", duration: "abc", intensity: "High",
			wantErr: ErrMissingField, wantField: FieldActivityType,
		},
		{
			name:     "zero duration",
			activity: "Run", duration: "0", intensity: "High",
			wantErr: ErrInvalidDuration, wantField: FieldDuration,
		},
		{
			name:     "negative duration",
			activity: "Run", duration: "-5", intensity: "High",
			wantErr: ErrInvalidDuration, wantField: FieldDuration,
		},
		{
			name:     "non-numeric duration",
			activity: "Run", duration: "abc", intensity: "High",
			wantErr: ErrInvalidDuration, wantField: FieldDuration,
		},
		{
			name:     "decimal duration",
			activity: "Run", duration: "12.5", intensity: "High",
			wantErr: ErrInvalidDuration, wantField: FieldDuration,
		},
		{
			name:     "padded duration",
			activity: "Run", duration: " 30", intensity: "High",
			wantErr: ErrInvalidDuration, wantField: FieldDuration,
		},
		{
			name:     "overflowing duration",
			activity: "Run", duration: "99999999999999999999", intensity: "High",
			wantErr: ErrInvalidDuration, wantField: FieldDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.activity, tt.duration, tt.intensity)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("Validate() = %+v, want %+v", got, tt.want)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, verr.Field)
			}
			if got != (Entry{}) {
				t.Errorf("expected zero Entry on error, got %+v", got)
			}
		})
	}
}

func TestValidateRandomValidInputs(t *testing.T) {
	gofakeit.Seed(42)
	for i := 0; i < 200; i++ {
		activity := gofakeit.Hobby()
		minutes := gofakeit.Number(1, 10000)
		intensity := gofakeit.RandomString([]string{"Low", "Medium", "High"})

		got, err := Validate(activity, strconv.Itoa(minutes), intensity)
		if err != nil {
			t.Fatalf("Validate(%q, %d, %q): %v", activity, minutes, intensity, err)
		}
		want := Entry{ActivityType: activity, DurationMinutes: minutes, Intensity: intensity}
		if got != want {
			t.Fatalf("Validate() = %+v, want %+v", got, want)
		}
	}
}

func TestValidateRandomMissingField(t *testing.T) {
	gofakeit.Seed(43)
	for i := 0; i < 100; i++ {
		fields := []string{gofakeit.Hobby(), gofakeit.Word(), gofakeit.Word()}
		fields[gofakeit.Number(0, 2)] = ""

		_, err := Validate(fields[0], fields[1], fields[2])
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("Validate(%q) error = %v, want ErrMissingField", fields, err)
		}
	}
}

func TestStrictValidator(t *testing.T) {
	v := Validator{Strict: true}

	for _, i := range Intensities() {
		if _, err := v.Validate("Run", "10", string(i)); err != nil {
			t.Errorf("strict Validate with %q: %v", i, err)
		}
	}

	_, err := v.Validate("Run", "10", "low")
	if !errors.Is(err, ErrInvalidIntensity) {
		t.Errorf("expected ErrInvalidIntensity for %q, got %v", "low", err)
	}

	// Duration is still checked before intensity membership.
	_, err = v.Validate("Run", "0", "Extreme")
	if !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration, got %v", err)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	tests := []struct {
		err  *ValidationError
		want string
	}{
		{&ValidationError{Field: FieldDuration, Err: ErrMissingField}, "missing field: duration is required"},
		{&ValidationError{Field: FieldDuration, Value: "abc", Err: ErrInvalidDuration}, `invalid duration: duration "abc"`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
