package admin

type LoadState string

const (
	StateLoading LoadState = "loading"
	StateLoaded  LoadState = "loaded"
	StateError   LoadState = "error"
)

// Collection is one dashboard table. Items survive a failed reload.
type Collection[T any] struct {
	State LoadState `json:"state"`
	Items []T       `json:"items"`
	Error string    `json:"error,omitempty"`

	prev LoadState
}

func newCollection[T any]() Collection[T] {
	return Collection[T]{State: StateLoading, Items: []T{}}
}

func (c *Collection[T]) begin() {
	c.prev = c.State
	c.State = StateLoading
}

// restore undoes begin for an abandoned fetch.
func (c *Collection[T]) restore() {
	c.State = c.prev
}

func (c *Collection[T]) succeed(items []T) {
	if items == nil {
		items = []T{}
	}
	c.State = StateLoaded
	c.Items = items
	c.Error = ""
}

func (c *Collection[T]) fail(err error) {
	c.State = StateError
	c.Error = err.Error()
}

func (c *Collection[T]) copy() Collection[T] {
	out := *c
	out.Items = append([]T(nil), c.Items...)
	if out.Items == nil {
		out.Items = []T{}
	}
	return out
}
