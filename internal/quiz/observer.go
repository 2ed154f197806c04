package quiz

// SessionInfo summarizes a freshly built session for observers.
type SessionInfo struct {
	SessionID    string
	Mode         Mode
	Items        int
	Requested    int
	TimerSeconds int
}

// Observer is notified of controller lifecycle events. Callbacks run after
// the controller lock is released, on the goroutine that caused the event.
type Observer interface {
	OnSessionStart(info SessionInfo)
	OnFinish(result Result)
	OnAbandon(info SessionInfo, answered int)
}

type nopObserver struct{}

func (nopObserver) OnSessionStart(SessionInfo) {}
func (nopObserver) OnFinish(Result)            {}
func (nopObserver) OnAbandon(SessionInfo, int) {}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	SessionStart func(SessionInfo)
	Finish       func(Result)
	Abandon      func(SessionInfo, int)
}

func (o ObserverFuncs) OnSessionStart(info SessionInfo) {
	if o.SessionStart != nil {
		o.SessionStart(info)
	}
}

func (o ObserverFuncs) OnFinish(result Result) {
	if o.Finish != nil {
		o.Finish(result)
	}
}

func (o ObserverFuncs) OnAbandon(info SessionInfo, answered int) {
	if o.Abandon != nil {
		o.Abandon(info, answered)
	}
}
