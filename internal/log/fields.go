package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldSuccess     = "success"
	FieldDuration    = "duration_ms"
	FieldCommandWord = "command_word"
	FieldCouponName  = "coupon_name"
	FieldUsage       = "usage"
	FieldUsageLimit  = "usage_limit"
	FieldCoupons     = "coupons"
	FieldMoneySymbol = "money_symbol"
	FieldBackend     = "backend"
	FieldPath        = "path"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentLogic   = "logic"
	ComponentStorage = "storage"
	ComponentAMQP    = "amqp"
	ComponentBackend = "backend"
)

// Operations defines standard operation names
const (
	OpExecute  = "execute"
	OpParse    = "parse"
	OpLoad     = "load"
	OpSave     = "save"
	OpPublish  = "publish"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithCommand adds the command word
func (f LogFields) WithCommand(word string) LogFields {
	f[FieldCommandWord] = word
	return f
}

// WithCoupon adds coupon-related fields
func (f LogFields) WithCoupon(name string, usage, limit int) LogFields {
	f[FieldCouponName] = name
	f[FieldUsage] = usage
	f[FieldUsageLimit] = limit
	return f
}

// WithOutcome adds success and duration fields
func (f LogFields) WithOutcome(success bool, durationMs int64) LogFields {
	f[FieldSuccess] = success
	f[FieldDuration] = durationMs
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
