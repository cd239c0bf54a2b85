package accessor

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battinfo/pkg/source"
)

// EnvSource selects the source of the shared accessor, see source.New.
const EnvSource = "BATTINFO_SOURCE"

var (
	sharedOnce sync.Once
	shared     *Accessor
	newSource  = source.New
)

// Shared returns the process-wide accessor, built on first use from the
// source named by $BATTINFO_SOURCE (default "auto"). If that source cannot
// be opened every query reports the unavailable encodings.
func Shared() *Accessor {
	sharedOnce.Do(func() {
		name := os.Getenv(EnvSource)
		if name == "" {
			name = source.NameAuto
		}

		src, err := newSource(name)
		if err != nil {
			logrus.WithError(err).WithField("source", name).Warn("failed to open battery source")
			src = source.NewFailing(err)
		}
		shared = New(src)
	})
	return shared
}
