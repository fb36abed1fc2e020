package catalog

import "time"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// defaultEntries is the demo drive.
var defaultEntries = []FileEntry{
	{ID: "1", Name: "Documents", Kind: KindFolder, Modified: day(2025, time.December, 20)},
	{ID: "2", Name: "Images", Kind: KindFolder, Modified: day(2025, time.December, 21)},
	{ID: "3", Name: "project-plan.pdf", FileType: TypePDF, SizeBytes: 2048000, Modified: day(2025, time.December, 25)},
	{ID: "4", Name: "dashboard.png", FileType: TypeImage, SizeBytes: 1024000, PreviewURI: "/general-data-dashboard.png", Modified: day(2025, time.December, 26)},
	{ID: "5", Name: "data.json", FileType: TypeJSON, SizeBytes: 45000, Modified: day(2025, time.December, 27)},
	{ID: "6", Name: "index.tsx", FileType: TypeCode, SizeBytes: 8900, Modified: day(2025, time.December, 28), Starred: true},
	{ID: "7", Name: "readme.md", FileType: TypeText, SizeBytes: 3400, Modified: day(2025, time.December, 28)},
}

// Default returns the built-in demo catalog.
func Default() *Memory {
	m, err := NewMemory(defaultEntries)
	if err != nil {
		panic("catalog: built-in entries are invalid: " + err.Error())
	}
	return m
}
