package manifest

import "fmt"

// NotificationOptions are the popup defaults handed to the notification
// widget. Offsets and spacing are pixels.
type NotificationOptions struct {
	Delay             int    `json:"delay"` // auto-dismiss, milliseconds
	StartTop          int    `json:"startTop"`
	StartRight        int    `json:"startRight"`
	VerticalSpacing   int    `json:"verticalSpacing"`
	HorizontalSpacing int    `json:"horizontalSpacing"`
	PositionX         string `json:"positionX"`
	PositionY         string `json:"positionY"`
}

// DefaultNotificationOptions anchors popups to the top-right corner and
// dismisses them after five seconds.
func DefaultNotificationOptions() NotificationOptions {
	return NotificationOptions{
		Delay:             5000,
		StartTop:          60,
		StartRight:        10,
		VerticalSpacing:   10,
		HorizontalSpacing: 20,
		PositionX:         "right",
		PositionY:         "top",
	}
}

// Validate rejects negative values and unknown anchor corners.
func (n NotificationOptions) Validate() error {
	if n.Delay < 0 || n.StartTop < 0 || n.StartRight < 0 || n.VerticalSpacing < 0 || n.HorizontalSpacing < 0 {
		return fmt.Errorf("manifest: notification offsets and delay must not be negative")
	}
	switch n.PositionX {
	case "left", "center", "right":
	default:
		return fmt.Errorf("manifest: invalid notification positionX %q", n.PositionX)
	}
	switch n.PositionY {
	case "top", "bottom":
	default:
		return fmt.Errorf("manifest: invalid notification positionY %q", n.PositionY)
	}
	return nil
}
