package asset

import "github.com/sirupsen/logrus"

// Option configures an Asset.
type Option func(*Asset)

// WithLogger sends debug output about decoder selection and buffer swaps
// to l.
func WithLogger(l *logrus.Entry) Option {
	return func(a *Asset) { a.opts.Logger = l }
}

// WithAutoOrient controls whether the EXIF orientation tag is applied when
// decoding. It is on by default.
func WithAutoOrient(on bool) Option {
	return func(a *Asset) { a.opts.AutoOrient = on }
}

// WithMaxFileBytes rejects files larger than n bytes in LoadFile.
// Zero disables the limit.
func WithMaxFileBytes(n int64) Option {
	return func(a *Asset) { a.opts.MaxFileBytes = n }
}
