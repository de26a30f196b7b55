package schedule

import "sort"

// beamState is one partial assignment in the beam: assign[i] is the
// agent serving visits[i], time[i] is the global completion time of
// visit i, and agentLast[j] is the index of the most recent visit
// assigned to agent j (-1 if agent j has not yet been deployed). Each
// state is sized to the current depth rather than the whole instance,
// since the beam carries many states at once instead of one search path.
type beamState struct {
	assign    []int
	time      []float64
	agentLast []int
}

// distanceFunc returns the travel distance between the portals at two
// visit sources.
type distanceFunc func(a, b int) float64

func newRootState(k int) *beamState {
	last := make([]int, k)
	for i := range last {
		last[i] = -1
	}

	return &beamState{agentLast: last}
}

// transition extends s by assigning visits[i] to agent j: the new
// completion time is the later of the previous
// visit's global completion time and agent j's own clock plus the
// travel distance from its last visit (zero if not yet deployed).
func transition(s *beamState, visits []visit, dist distanceFunc, i, j int) *beamState {
	var prevTime float64
	if i > 0 {
		prevTime = s.time[i-1]
	}

	var agentClock, travel float64
	if last := s.agentLast[j]; last != -1 {
		agentClock = s.time[last]
		travel = dist(visits[last].source, visits[i].source)
	}

	newTime := prevTime
	if c := agentClock + travel; c > newTime {
		newTime = c
	}

	agentLast := append([]int(nil), s.agentLast...)
	agentLast[j] = i

	return &beamState{
		assign:    append(append([]int(nil), s.assign...), j),
		time:      append(append([]float64(nil), s.time...), newTime),
		agentLast: agentLast,
	}
}

// search runs the beam over the full visit sequence and returns the
// surviving state with the smallest makespan. hi bounds the total number
// of children generated at each depth; lo = hi/k survivors are kept.
func search(visits []visit, dist distanceFunc, k int, hi int) *beamState {
	if hi <= 0 {
		hi = defaultHi
	}
	lo := hi / k
	if lo < 1 {
		lo = 1
	}

	survivors := []*beamState{newRootState(k)}
	for depth := 0; depth < len(visits) && len(survivors) > 0; depth++ {
		children := make([]*beamState, 0, len(survivors)*k)
		for _, s := range survivors {
			for j := 0; j < k; j++ {
				children = append(children, transition(s, visits, dist, depth, j))
			}
		}
		sort.Slice(children, func(a, b int) bool {
			return children[a].time[depth] < children[b].time[depth]
		})
		if len(children) > lo {
			children = children[:lo]
		}
		survivors = children
	}

	best := survivors[0]
	for _, s := range survivors[1:] {
		if s.time[len(s.time)-1] < best.time[len(best.time)-1] {
			best = s
		}
	}

	return best
}
