package alg

// Stack of token indices. Index(0) is the top.
type Stack interface {
	Push(int)
	Pop() (int, bool)
	Peek() (int, bool)
	Index(int) (int, bool)
	Size() int
	Values() []int
}

// Queue of token indices. Index(0) is the front.
type Queue interface {
	Enqueue(int)
	Dequeue() (int, bool)
	Peek() (int, bool)
	Index(int) (int, bool)
	Size() int
	Values() []int
}

type StackArray struct {
	Array []int
}

var _ Stack = &StackArray{}

func (s *StackArray) Push(val int) {
	s.Array = append(s.Array, val)
}

func (s *StackArray) Pop() (int, bool) {
	if s.Size() == 0 {
		return 0, false
	}
	retval := s.Array[len(s.Array)-1]
	s.Array = s.Array[:len(s.Array)-1]
	return retval, true
}

func (s *StackArray) Index(index int) (int, bool) {
	if index < 0 || index >= s.Size() {
		return 0, false
	}
	return s.Array[len(s.Array)-1-index], true
}

func (s *StackArray) Peek() (int, bool) {
	return s.Index(0)
}

func (s *StackArray) Size() int {
	return len(s.Array)
}

// Values returns a copy, bottom first
func (s *StackArray) Values() []int {
	retval := make([]int, len(s.Array))
	copy(retval, s.Array)
	return retval
}

func NewStackArray(size int) *StackArray {
	return &StackArray{make([]int, 0, size)}
}

type QueueSlice struct {
	slice []int
}

var _ Queue = &QueueSlice{}

func (q *QueueSlice) Enqueue(val int) {
	q.slice = append(q.slice, val)
}

func (q *QueueSlice) Dequeue() (int, bool) {
	if q.Size() == 0 {
		return 0, false
	}
	retval := q.slice[0]
	q.slice = q.slice[1:]
	return retval, true
}

func (q *QueueSlice) Index(index int) (int, bool) {
	if index < 0 || index >= q.Size() {
		return 0, false
	}
	return q.slice[index], true
}

func (q *QueueSlice) Peek() (int, bool) {
	return q.Index(0)
}

func (q *QueueSlice) Size() int {
	return len(q.slice)
}

// Values returns a copy, front first
func (q *QueueSlice) Values() []int {
	retval := make([]int, len(q.slice))
	copy(retval, q.slice)
	return retval
}

func NewQueueSlice(size int) *QueueSlice {
	return &QueueSlice{make([]int, 0, size)}
}
