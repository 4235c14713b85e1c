package hamilton

// frame is one level of the simulated recursion: the vertex whose
// neighbors are being explored, its neighbor list snapshot, and the index
// of the next neighbor to try.
type frame struct {
	id   string
	nbs  []string
	next int
}

// searchIterative replays the exact recursive exploration of extend with
// an explicit stack, so deep path-shaped graphs cannot exhaust the
// goroutine call stack. Decision results are identical to the recursive
// engine by construction: same neighbor order, same visited rule, same
// closing check.
func (s *searcher) searchIterative(start string) (bool, error) {
	stack := make([]frame, 1, s.target)
	stack[0] = frame{id: start, nbs: s.graph.Neighbors(start)}

	for len(stack) > 0 {
		select {
		case <-s.opts.Ctx.Done():
			return false, s.opts.Ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]

		if len(s.path) == s.target {
			if !s.closed || s.graph.HasEdge(top.id, s.path[0]) {
				return true, nil
			}
			// Full-length path that does not close: backtrack.
			stack = stack[:len(stack)-1]
			s.path = s.path[:len(s.path)-1]
			delete(s.onPath, top.id)

			continue
		}

		advanced := false
		for top.next < len(top.nbs) {
			nb := top.nbs[top.next]
			top.next++
			if s.onPath[nb] {
				continue
			}
			s.path = append(s.path, nb)
			s.onPath[nb] = true
			stack = append(stack, frame{id: nb, nbs: s.graph.Neighbors(nb)})
			advanced = true

			break
		}
		if !advanced {
			// Neighbors exhausted: pop and unwind the path.
			stack = stack[:len(stack)-1]
			s.path = s.path[:len(s.path)-1]
			delete(s.onPath, top.id)
		}
	}

	return false, nil
}
