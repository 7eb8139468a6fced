package alert

import (
	"time"
)

// CoolDownHandler ... Interface for the cool down handler
type CoolDownHandler interface {
	Add(class string, coolDownTime time.Duration)
	Update()
	IsCoolDown(class string) bool
}

// coolDownHandler ... Implementation of CoolDownHandler, keyed by error class
type coolDownHandler struct {
	classes map[string]time.Time
}

// NewCoolDownHandler ... Initializer
func NewCoolDownHandler() CoolDownHandler {
	return &coolDownHandler{
		classes: make(map[string]time.Time),
	}
}

// Add ... Starts a cool down for the class
func (cdh *coolDownHandler) Add(class string, coolDownTime time.Duration) {
	cdh.classes[class] = time.Now().Add(coolDownTime)
}

// Update ... Drops expired cool downs
func (cdh *coolDownHandler) Update() {
	for class, t := range cdh.classes {
		if t.Before(time.Now()) {
			delete(cdh.classes, class)
		}
	}
}

// IsCoolDown ... Checks if the class is in cool down
func (cdh *coolDownHandler) IsCoolDown(class string) bool {
	if t, ok := cdh.classes[class]; ok {
		return t.After(time.Now())
	}

	return false
}
