package apierrors

const (
	MsgUnauthorized = "unauthorized"

	MsgInvalidGoalID      = "invalidGoalID"
	MsgInvalidGoalPayload = "invalidGoalPayload"
	MsgGoalNotFound       = "goalNotFound"
	MsgInvalidParentTier  = "invalidParentTier"
	MsgCyclicHierarchy    = "cyclicHierarchy"
	MsgFailListGoals      = "failListGoals"
	MsgFailCreateGoal     = "failCreateGoal"
	MsgFailUpdateGoal     = "failUpdateGoal"
	MsgFailDeleteGoal     = "failDeleteGoal"
	MsgFailGoalProgress   = "failGoalProgress"

	MsgInvalidTodoID      = "invalidTodoID"
	MsgInvalidTodoPayload = "invalidTodoPayload"
	MsgTodoNotFound       = "todoNotFound"
	MsgFailListTodos      = "failListTodos"
	MsgFailCreateTodo     = "failCreateTodo"
	MsgFailUpdateTodo     = "failUpdateTodo"
	MsgFailDeleteTodo     = "failDeleteTodo"
	MsgFailCompleteTodo   = "failCompleteTodo"

	MsgInvalidCheckInDate = "invalidCheckInDate"
	MsgFutureCheckIn      = "futureCheckIn"
	MsgFailToggleCheckIn  = "failToggleCheckIn"
	MsgFailListCheckIns   = "failListCheckIns"

	MsgInboxItemNotFound   = "inboxItemNotFound"
	MsgInboxItemDismissed  = "inboxItemDismissed"
	MsgInvalidInboxPayload = "invalidInboxPayload"
	MsgFailListInbox       = "failListInbox"
	MsgFailConvertItem     = "failConvertItem"
	MsgFailDismissItem     = "failDismissItem"
)
