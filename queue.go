package gart

// AverageQueue is a bounded FIFO that keeps the mean of its contents.
// Enqueuing into a full queue evicts the oldest value.
type AverageQueue struct {
	capacity int
	average  float64
	values   []float64 // ring buffer
	head     int       // index of the oldest value
	length   int
}

// NewAverageQueue returns an empty queue holding at most capacity values.
func NewAverageQueue(capacity int) *AverageQueue {
	if capacity < 0 {
		capacity = 0
	}
	return &AverageQueue{
		capacity: capacity,
		values:   make([]float64, capacity),
	}
}

// Len returns the number of queued values.
func (q *AverageQueue) Len() int {
	return q.length
}

// Cap returns the capacity.
func (q *AverageQueue) Cap() int {
	return q.capacity
}

// Oldest returns the value the next Dequeue would remove.
func (q *AverageQueue) Oldest() (float64, bool) {
	if q.length == 0 {
		return 0, false
	}
	return q.values[q.head], true
}

// Newest returns the most recently enqueued value.
func (q *AverageQueue) Newest() (float64, bool) {
	if q.length == 0 {
		return 0, false
	}
	return q.values[(q.head+q.length-1)%q.capacity], true
}

// Dequeue removes and returns the oldest value.
func (q *AverageQueue) Dequeue() (float64, bool) {
	if q.length == 0 {
		return 0, false
	}
	v := q.values[q.head]
	if q.length == 1 {
		q.average = 0
	} else {
		n := float64(q.length)
		q.average -= v / n
		q.average *= n / (n - 1)
	}
	q.head = (q.head + 1) % q.capacity
	q.length--
	return v, true
}

// Enqueue appends n, evicting the oldest value when full. A zero capacity
// queue stays empty.
func (q *AverageQueue) Enqueue(n float64) {
	if q.capacity == 0 {
		return
	}
	if q.length >= q.capacity {
		q.Dequeue()
	}
	q.values[(q.head+q.length)%q.capacity] = n
	q.length++
	l := float64(q.length)
	q.average = q.average*((l-1)/l) + n/l
}

// Average returns the mean of the queued values, 0 when empty.
func (q *AverageQueue) Average() float64 {
	return q.average
}
