package core

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// User-facing constraint messages shown when a field fails validation.
const (
	MessageNameConstraints      = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	MessagePhoneConstraints     = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	MessageEmailConstraints     = "Emails should be of the format local-part@domain, where the local-part only contains alphanumeric characters and +_.- and the domain is made of alphanumeric labels separated by periods"
	MessageExpiryConstraints    = "Expiry dates should be a valid date in the format D-M-YYYY"
	MessageMonthYearConstraints = "Month-year values should be a valid month in the format M-YYYY"
	MessageUsageConstraints     = "Usage should be a non-negative whole number"
	MessageLimitConstraints     = "Limit should be a non-negative whole number, where 0 means unlimited"
	MessageTagConstraints       = "Tags names should be alphanumeric"
)

var (
	ErrInvalidName      = errors.New(MessageNameConstraints)
	ErrInvalidPhone     = errors.New(MessagePhoneConstraints)
	ErrInvalidEmail     = errors.New(MessageEmailConstraints)
	ErrInvalidExpiry    = errors.New(MessageExpiryConstraints)
	ErrInvalidMonthYear = errors.New(MessageMonthYearConstraints)
	ErrInvalidUsage     = errors.New(MessageUsageConstraints)
	ErrInvalidLimit     = errors.New(MessageLimitConstraints)
	ErrInvalidTag       = errors.New(MessageTagConstraints)
)

const (
	// DateLayout is how dates are printed everywhere in the app.
	DateLayout = "02-01-2006"

	// dateInputLayout accepts one or two digit days and months.
	dateInputLayout      = "2-1-2006"
	monthYearInputLayout = "1-2006"
	monthYearLayout      = "01-2006"
)

var (
	nameRegexp  = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	phoneRegexp = regexp.MustCompile(`^\d{3,}$`)
	emailRegexp = regexp.MustCompile(`^[A-Za-z0-9+_.\-]+@[A-Za-z0-9]+(?:[-.][A-Za-z0-9]+)*$`)
	tagRegexp   = regexp.MustCompile(`^[\p{L}\p{N}]+$`)
)

type (
	// Date is a calendar date normalised to midnight UTC so it can be
	// used as a map key.
	Date struct {
		time.Time
	}

	Name struct {
		value string
	}

	// Phone is the promoter's contact number. The zero value means none.
	Phone struct {
		value string
	}

	// Email is the promoter's contact address. The zero value means none.
	Email struct {
		value string
	}

	ExpiryDate struct {
		date Date
	}

	// MonthYear selects the month shown by the calendar view.
	MonthYear struct {
		Year  int
		Month time.Month
	}

	Usage struct {
		value int
	}

	// Limit caps how many times a coupon can be used. Zero is unlimited.
	Limit struct {
		value int
	}

	Tag struct {
		name string
	}
)

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf drops the clock part of t, keeping t's calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ParseDate reads a D-M-YYYY date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateInputLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if !nameRegexp.MatchString(s) {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRegexp.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string { return p.value }
func (p Phone) IsEmpty() bool  { return p.value == "" }

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegexp.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) String() string { return e.value }
func (e Email) IsEmpty() bool  { return e.value == "" }

func NewExpiryDate(s string) (ExpiryDate, error) {
	d, err := ParseDate(s)
	if err != nil {
		return ExpiryDate{}, ErrInvalidExpiry
	}
	return ExpiryDate{date: d}, nil
}

func (e ExpiryDate) Date() Date     { return e.date }
func (e ExpiryDate) String() string { return e.date.String() }

func ParseMonthYear(s string) (MonthYear, error) {
	t, err := time.Parse(monthYearInputLayout, strings.TrimSpace(s))
	if err != nil {
		return MonthYear{}, ErrInvalidMonthYear
	}
	return MonthYear{Year: t.Year(), Month: t.Month()}, nil
}

func MonthYearOf(t time.Time) MonthYear {
	return MonthYear{Year: t.Year(), Month: t.Month()}
}

func (m MonthYear) String() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format(monthYearLayout)
}

func NewUsage(n int) (Usage, error) {
	if n < 0 {
		return Usage{}, ErrInvalidUsage
	}
	return Usage{value: n}, nil
}

func ParseUsage(s string) (Usage, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Usage{}, ErrInvalidUsage
	}
	return NewUsage(n)
}

func (u Usage) Value() int     { return u.value }
func (u Usage) String() string { return strconv.Itoa(u.value) }

// Increase returns the usage after one more use.
func (u Usage) Increase() Usage {
	return Usage{value: u.value + 1}
}

func NewLimit(n int) (Limit, error) {
	if n < 0 {
		return Limit{}, ErrInvalidLimit
	}
	return Limit{value: n}, nil
}

func ParseLimit(s string) (Limit, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Limit{}, ErrInvalidLimit
	}
	return NewLimit(n)
}

func (l Limit) Value() int        { return l.value }
func (l Limit) IsUnlimited() bool { return l.value == 0 }

func (l Limit) String() string {
	if l.IsUnlimited() {
		return "unlimited"
	}
	return strconv.Itoa(l.value)
}

// IsReachedBy reports whether u has used up the limit.
func (l Limit) IsReachedBy(u Usage) bool {
	return !l.IsUnlimited() && u.value >= l.value
}

func NewTag(s string) (Tag, error) {
	s = strings.TrimSpace(s)
	if !tagRegexp.MatchString(s) {
		return Tag{}, ErrInvalidTag
	}
	return Tag{name: s}, nil
}

func (t Tag) String() string { return t.name }
