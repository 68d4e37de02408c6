package observe

import (
	"sync"
	"time"

	"github.com/vango-dev/vrange/pkg/vdom"
)

// Op names a reconciliation decision.
type Op string

const (
	OpMount   Op = "mount"
	OpReuse   Op = "reuse"
	OpReplace Op = "replace"
	OpAppend  Op = "append"
	OpPass    Op = "pass"
)

// Record is one entry of the operation log.
type Record struct {
	Seq  uint64    `json:"seq"`
	Op   Op        `json:"op"`
	Node string    `json:"node,omitempty"`
	Prev string    `json:"prev,omitempty"`
	Time time.Time `json:"time"`

	// Pass is set for OpPass records.
	Pass *vdom.Pass `json:"pass,omitempty"`
}

// Recorder keeps the most recent records in memory and fans them out to
// subscribers. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	limit   int
	seq     uint64
	records []Record
	subs    map[chan Record]struct{}
}

var _ vdom.Observer = (*Recorder)(nil)

// NewRecorder keeps at most limit records. A limit <= 0 keeps everything.
func NewRecorder(limit int) *Recorder {
	return &Recorder{
		limit: limit,
		subs:  make(map[chan Record]struct{}),
	}
}

func (r *Recorder) NodeMounted(n *vdom.VNode)   { r.add(Record{Op: OpMount, Node: n.String()}) }
func (r *Recorder) NodeReused(n *vdom.VNode)    { r.add(Record{Op: OpReuse, Node: n.String()}) }
func (r *Recorder) ChildAppended(n *vdom.VNode) { r.add(Record{Op: OpAppend, Node: n.String()}) }

func (r *Recorder) NodeReplaced(prev, next *vdom.VNode) {
	r.add(Record{Op: OpReplace, Node: next.String(), Prev: prev.String()})
}

func (r *Recorder) PassFinished(p vdom.Pass) {
	r.add(Record{Op: OpPass, Node: p.Component, Pass: &p})
}

func (r *Recorder) add(rec Record) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	rec.Seq = r.seq
	rec.Time = time.Now()
	r.records = append(r.records, rec)
	if r.limit > 0 && len(r.records) > r.limit {
		r.records = append(r.records[:0:0], r.records[len(r.records)-r.limit:]...)
	}

	for ch := range r.subs {
		select {
		case ch <- rec:
		default:
			// Slow subscriber; drop rather than block the render.
		}
	}
}

// Records returns a copy of the retained records.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Record(nil), r.records...)
}

// Passes returns the summaries of retained passes.
func (r *Recorder) Passes() []vdom.Pass {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []vdom.Pass
	for _, rec := range r.records {
		if rec.Pass != nil {
			out = append(out, *rec.Pass)
		}
	}
	return out
}

// Count returns how many retained records have the given op.
func (r *Recorder) Count(op Op) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rec := range r.records {
		if rec.Op == op {
			n++
		}
	}
	return n
}

// Reset drops all retained records.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.records = nil
	r.mu.Unlock()
}

// Subscribe returns a channel receiving every new record and a function
// that cancels the subscription and closes the channel.
func (r *Recorder) Subscribe(buffer int) (<-chan Record, func()) {
	ch := make(chan Record, buffer)
	r.mu.Lock()
	r.subs[ch] = struct{}{}
	r.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.subs, ch)
			r.mu.Unlock()
			close(ch)
		})
	}
}

// Subscribers returns the number of active subscriptions.
func (r *Recorder) Subscribers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}
