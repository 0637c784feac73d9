// Package events groups trace emission behind typed tracers so call sites
// stay terse and event names stay consistent.
package events

import "github.com/ethanuppal/kegtui/internal/logging"

// Event names as they appear in the log stream.
const (
	EventAppStart      = "app.start"
	EventAppExit       = "app.exit"
	EventFocusChange   = "ui.focus"
	EventMenuCursor    = "ui.menu-cursor"
	EventNavStack      = "ui.nav"
	EventViewLoaded    = "ui.view"
	EventActionInvoke  = "action.invoke"
	EventActionError   = "action.error"
	EventScanPublished = "scan.published"
	EventScanSkipped   = "scan.skipped"
)

type AppTracer struct{}

type UITracer struct{}

type ActionTracer struct{}

type ScanTracer struct{}

var (
	App    = AppTracer{}
	UI     = UITracer{}
	Action = ActionTracer{}
	Scan   = ScanTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace(EventAppStart, payload)
}

func (AppTracer) Exit() {
	logging.Trace(EventAppExit, nil)
}

func (UITracer) FocusChange(focus string) {
	logging.Trace(EventFocusChange, map[string]interface{}{"focus": focus})
}

func (UITracer) MenuCursor(nav string, row int) {
	logging.Trace(EventMenuCursor, map[string]interface{}{"nav": nav, "row": row})
}

func (UITracer) NavStack(op, nav string, depth int) {
	logging.Trace(EventNavStack, map[string]interface{}{"op": op, "nav": nav, "depth": depth})
}

func (UITracer) ViewLoaded(view int) {
	logging.Trace(EventViewLoaded, map[string]interface{}{"view": view})
}

func (ActionTracer) Invoke(item string) {
	logging.Trace(EventActionInvoke, map[string]interface{}{"item": item})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace(EventActionError, map[string]interface{}{"error": err.Error()})
}

func (ScanTracer) Published(kegs, engines, wrappers int) {
	logging.Trace(EventScanPublished, map[string]interface{}{
		"kegs":     kegs,
		"engines":  engines,
		"wrappers": wrappers,
	})
}

func (ScanTracer) SkippedPublish() {
	logging.Trace(EventScanSkipped, nil)
}
