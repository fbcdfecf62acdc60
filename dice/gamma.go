package dice

// gamma is a perceptual brightness curve for the decoration LED,
// approximately round(255*(i/63)^2.2). The fade walks it from index 63
// down to 0 to ramp the LED out. Entries are strictly non-decreasing.
var gamma = [64]uint8{
	0, 0, 0, 0,
	0, 0, 0, 0,
	1, 1, 1, 1,
	2, 2, 3, 3,
	4, 5, 6, 7,
	8, 9, 11, 12,
	14, 16, 18, 20,
	22, 25, 28, 30,
	33, 37, 40, 44,
	48, 52, 56, 60,
	65, 70, 76, 81,
	87, 93, 99, 106,
	113, 120, 127, 135,
	143, 152, 161, 170,
	179, 189, 199, 209,
	220, 231, 243, 255,
}
