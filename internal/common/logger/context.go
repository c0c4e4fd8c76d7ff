package logger

import "context"

type fieldsKey struct{}

// ContextWithFields attaches request-scoped fields (request id, route) that downstream
// components merge into their own log entries.
func ContextWithFields(ctx context.Context, fields map[string]interface{}) context.Context {
	merged := make(map[string]interface{}, len(fields))
	for k, v := range FieldsFromContext(ctx) {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return context.WithValue(ctx, fieldsKey{}, merged)
}

// FieldsFromContext returns the fields set by ContextWithFields, or nil.
func FieldsFromContext(ctx context.Context) map[string]interface{} {
	fields, _ := ctx.Value(fieldsKey{}).(map[string]interface{})
	return fields
}

// ForContext returns l extended with the request-scoped fields of ctx.
func ForContext(ctx context.Context, l Logger) Logger {
	fields := FieldsFromContext(ctx)
	if len(fields) == 0 {
		return l
	}
	return l.With(fields)
}
