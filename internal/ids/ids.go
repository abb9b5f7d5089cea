// Package ids generates collision-resistant identifiers for stored files.
package ids

import "github.com/segmentio/ksuid"

func New() string {
	return ksuid.New().String()
}
