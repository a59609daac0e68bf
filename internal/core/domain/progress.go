package domain

import "math"

// GoalGraph is an immutable snapshot of one owner's goal hierarchy and the
// todos linked into it. Aggregation reads only from the snapshot, never
// from live storage.
type GoalGraph struct {
	Goals       map[string]*Goal
	ChildrenOf  map[string][]string
	TodosByGoal map[string][]Todo
}

// NewGoalGraph indexes a flat goal/todo listing into a snapshot. Dangling
// parent references (deleted parents) are kept out of the child index.
func NewGoalGraph(goals []Goal, todos []Todo) *GoalGraph {
	graph := &GoalGraph{
		Goals:       make(map[string]*Goal, len(goals)),
		ChildrenOf:  make(map[string][]string),
		TodosByGoal: make(map[string][]Todo),
	}
	for i := range goals {
		goal := &goals[i]
		graph.Goals[goal.ID] = goal
	}
	for i := range goals {
		goal := &goals[i]
		if goal.ParentGoalID == nil {
			continue
		}
		if _, ok := graph.Goals[*goal.ParentGoalID]; !ok {
			continue
		}
		graph.ChildrenOf[*goal.ParentGoalID] = append(graph.ChildrenOf[*goal.ParentGoalID], goal.ID)
	}
	for _, todo := range todos {
		if todo.GoalID == nil {
			continue
		}
		graph.TodosByGoal[*todo.GoalID] = append(graph.TodosByGoal[*todo.GoalID], todo)
	}
	return graph
}

// EffectiveProgress computes a goal's completion percentage from the first
// matching rule: mean of child progress, linked-todo completion ratio,
// status-derived default, or the stored manual value. A parent chain that
// loops back on itself yields ErrCyclicHierarchy instead of recursing
// forever.
func EffectiveProgress(graph *GoalGraph, goalID string) (int, error) {
	return effectiveProgress(graph, goalID, make(map[string]bool))
}

func effectiveProgress(graph *GoalGraph, goalID string, visiting map[string]bool) (int, error) {
	goal, ok := graph.Goals[goalID]
	if !ok {
		return 0, ErrGoalNotFound
	}
	if visiting[goalID] {
		return 0, ErrCyclicHierarchy
	}
	visiting[goalID] = true
	defer delete(visiting, goalID)

	if children := graph.ChildrenOf[goalID]; len(children) > 0 {
		sum := 0.0
		for _, childID := range children {
			childProgress, err := effectiveProgress(graph, childID, visiting)
			if err != nil {
				return 0, err
			}
			sum += float64(childProgress)
		}
		return int(math.Round(sum / float64(len(children)))), nil
	}

	if todos := graph.TodosByGoal[goalID]; len(todos) > 0 {
		completed := 0
		for _, todo := range todos {
			if todo.Status == TodoStatusCompleted {
				completed++
			}
		}
		return int(math.Round(100 * float64(completed) / float64(len(todos)))), nil
	}

	switch goal.Status {
	case GoalStatusCompleted:
		return 100, nil
	case GoalStatusNotStarted, GoalStatusCancelled:
		return 0, nil
	}

	return goal.Progress, nil
}

// ParentChain walks upward from a goal collecting the ids whose stored
// progress should be refreshed after a change below them, nearest first.
// The walk stops at a dangling reference or on revisiting an id.
func ParentChain(graph *GoalGraph, goalID string) ([]string, error) {
	var chain []string
	seen := map[string]bool{goalID: true}
	goal, ok := graph.Goals[goalID]
	if !ok {
		return nil, ErrGoalNotFound
	}
	for goal.ParentGoalID != nil {
		parent, ok := graph.Goals[*goal.ParentGoalID]
		if !ok {
			break
		}
		if seen[parent.ID] {
			return nil, ErrCyclicHierarchy
		}
		seen[parent.ID] = true
		chain = append(chain, parent.ID)
		goal = parent
	}
	return chain, nil
}
