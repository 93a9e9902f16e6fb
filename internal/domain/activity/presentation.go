package activity

import "strings"

// TypeStyle carries the display attributes for an activity type: the badge
// color classes and the icon name the frontend renders.
type TypeStyle struct {
	ColorClass string `json:"color_class"`
	TextClass  string `json:"text_class"`
	Icon       string `json:"icon"`
}

var defaultStyle = TypeStyle{
	ColorClass: "bg-gray-100",
	TextClass:  "text-gray-800",
	Icon:       "calendar",
}

// Lookup is case-insensitive on the type name.
var typeStyles = map[string]TypeStyle{
	"vacation":    {ColorClass: "bg-blue-100", TextClass: "text-blue-800", Icon: "calendar"},
	"sick leave":  {ColorClass: "bg-red-100", TextClass: "text-red-800", Icon: "clock"},
	"remote work": {ColorClass: "bg-green-100", TextClass: "text-green-800", Icon: "home"},
	"training":    {ColorClass: "bg-purple-100", TextClass: "text-purple-800", Icon: "user"},
	"meeting":     {ColorClass: "bg-purple-100", TextClass: "text-purple-800", Icon: "calendar"},
	"project":     {ColorClass: "bg-purple-100", TextClass: "text-purple-800", Icon: "briefcase"},
}

// StyleFor always returns a usable style; unrecognized types get the default
// gray style.
func StyleFor(activityType string) TypeStyle {
	if style, ok := typeStyles[strings.ToLower(activityType)]; ok {
		return style
	}
	return defaultStyle
}
