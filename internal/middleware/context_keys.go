package middleware

import "context"

// subjectKey is the key used to store the authenticated token subject.
const subjectKey = contextKey("subject")

// WithSubject returns a copy of ctx carrying the authenticated subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// GetSubjectFromCtx retrieves the authenticated token subject.
// It returns false when the request was not authenticated.
func GetSubjectFromCtx(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok && subject != ""
}
