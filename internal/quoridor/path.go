package quoridor

// Tracer observes path searches. Implementations must not mutate the board.
type Tracer interface {
	// Visit is called for every space cell the first time the search reaches it.
	Visit(pos Position)
	// Done is called once per search with its outcome.
	Done(trace PathTrace)
}

// PathTrace summarizes one path search.
type PathTrace struct {
	Player  Player
	Start   Position
	Visited []Position // discovery order, start first
	Found   bool
}

// searchOrder is the neighbor expansion order of the depth-first search.
var searchOrder = [...]Cardinality{North, South, East, West}

// CheckForPath reports whether player, standing on start, can reach their
// goal row through a sequence of legal single moves. Cells held by the
// opponent count as impassable. Nothing is cached between calls.
func (b *Board) CheckForPath(start Position, player Player) bool {
	_, found := b.search(start, player)
	return found
}

// FindPath is CheckForPath returning the route the search found, from start
// to the first goal-row cell reached. It is not necessarily the shortest.
func (b *Board) FindPath(start Position, player Player) ([]Position, bool) {
	return b.search(start, player)
}

type frame struct {
	pos  Position
	next int // index into searchOrder of the next neighbor to try
}

// search is an iterative depth-first search; the stack doubles as the path.
func (b *Board) search(start Position, player Player) ([]Position, bool) {
	trace := PathTrace{Player: player, Start: start}
	start, err := b.bind(start)
	if err != nil {
		b.done(trace)
		return nil, false
	}
	trace.Start = start

	goal := player.GoalRow(b.dims)
	visited := map[Position]struct{}{start: {}}
	trace.Visited = append(trace.Visited, start)
	b.visit(start)

	stack := []frame{{pos: start}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.pos.row == goal {
			trace.Found = true
			break
		}
		if top.next == len(searchOrder) {
			stack = stack[:len(stack)-1]
			continue
		}
		dir := searchOrder[top.next]
		top.next++

		next, ok := b.step(top.pos, dir)
		if !ok {
			continue
		}
		if _, seen := visited[next]; seen {
			continue
		}
		visited[next] = struct{}{}
		trace.Visited = append(trace.Visited, next)
		b.visit(next)
		stack = append(stack, frame{pos: next})
	}
	b.done(trace)

	if !trace.Found {
		return nil, false
	}
	path := make([]Position, len(stack))
	for i, f := range stack {
		path[i] = f.pos
	}
	return path, true
}

func (b *Board) visit(pos Position) {
	if b.tracer != nil {
		b.tracer.Visit(pos)
	}
}

func (b *Board) done(trace PathTrace) {
	if b.tracer != nil {
		b.tracer.Done(trace)
	}
}
