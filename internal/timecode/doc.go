// Package timecode turns loosely typed time fields into seconds and
// renders them as display or subtitle timestamps.
//
// Time values may arrive as numbers, numeric strings, or descriptor
// objects that wrap the number under a "value" key:
//
//	timecode.Extract(12.5)                        // 12.5
//	timecode.Extract("12.5")                      // 12.5
//	timecode.Extract(map[string]any{"value": 3})  // 3
//	timecode.Extract("n/a")                       // 0
//
//	timecode.FormatDisplay(3661, timecode.StyleClock)  // "01:01:01"
//	timecode.FormatDisplay(90, timecode.StyleCompact)  // "01:30"
//	timecode.FormatSubtitle(1.5)                       // "00:00:01,500"
package timecode
