// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package ndlz

import (
	"io"

	"github.com/sirupsen/logrus"
)

// discardLogger returns a logrus logger with output disabled, used as the
// zero-value default for Context.Logger so library consumers never see
// unsolicited output unless they opt in.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
