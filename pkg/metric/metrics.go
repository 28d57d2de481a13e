package metric

import (
	"net/http"
	"time"
)

type (
	Factory interface {
		HTTP() HTTP
		Registry() Registry
		Store() Store
		Handler() http.Handler
	}

	HTTP interface {
		Request(method, path string, status int, duration time.Duration)
		SlowRequest(method, path string, status int, duration time.Duration)
	}

	Registry interface {
		ObserveDuration(operation string, duration time.Duration)
		IncrementNotFound(operation string)
		IncrementFailures(operation string)
	}

	Store interface {
		Hit(storeType string)
		Miss(storeType string)
		Size(storeType string, size int)
	}
)
