package ports

import "time"

// Clock supplies the current instant to the application layer.
type Clock interface {
	Now() time.Time
}
