package maze

// Neighbor visit order: right, left, down, up. The order decides which path
// is found first; the search does not look for the shortest one.
var directions = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// frame is one level of the depth-first walk: the cell being expanded and the
// index of the next direction to try from it.
type frame struct {
	at   Point
	next int
}

// SearchResult describes a finished search.
type SearchResult struct {
	// Found reports whether stop was reached.
	Found bool `json:"found"`
	// Path lists the cells of the successful branch from start to stop
	// inclusive. When the walk stepped back onto start, start appears a
	// second time. Empty when Found is false.
	Path []Point `json:"path,omitempty"`
	// Visited counts the cells this search marked Visited, including those
	// later promoted to CorrectPath.
	Visited int `json:"visited"`
}

// Search runs an exhaustive depth-first search from start to stop, recording
// its progress in g.
//
// A neighbor is entered only when it is inside g and exactly Empty; entering
// marks it Visited. The start cell is not marked when the walk begins, so an
// Empty start can be entered again from a neighbor. When stop is reached,
// every entered cell on the current branch, stop included, becomes
// CorrectPath; cells of abandoned branches stay Visited. A start that was
// never re-entered keeps its color unless start == stop, in which case it
// alone becomes CorrectPath.
//
// The walk keeps its own stack, so depth is bounded by memory rather than the
// goroutine stack. Coordinates outside g return an *OutOfBoundsError before g
// is touched. Not finding a path is not an error.
func Search(g *Grid, start, stop Point) (*SearchResult, error) {
	if !g.Contains(start) {
		return nil, &OutOfBoundsError{Which: "start", Point: start, Width: g.width, Height: g.height}
	}
	if !g.Contains(stop) {
		return nil, &OutOfBoundsError{Which: "stop", Point: stop, Width: g.width, Height: g.height}
	}

	res := &SearchResult{}
	stack := []frame{{at: start}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.at == stop {
			g.Set(stop, CorrectPath)
			res.Found = true
			res.Path = make([]Point, len(stack))
			for i, f := range stack {
				res.Path[i] = f.at
				if i > 0 {
					g.Set(f.at, CorrectPath)
				}
			}
			return res, nil
		}
		if top.next == len(directions) {
			stack = stack[:len(stack)-1]
			continue
		}

		n := top.at.Add(directions[top.next])
		top.next++
		if !g.Contains(n) || g.At(n) != Empty {
			continue
		}
		g.Set(n, Visited)
		res.Visited++
		stack = append(stack, frame{at: n})
	}
	return res, nil
}

// FindPath searches g from start to stop and reports whether a path exists.
// See Search for how g is marked.
func FindPath(g *Grid, start, stop Point) (bool, error) {
	res, err := Search(g, start, stop)
	if err != nil {
		return false, err
	}
	return res.Found, nil
}
