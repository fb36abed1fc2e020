// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// MinTerminalWidth and MinTerminalHeight clamp tiny terminals so layout
	// math never goes negative
	MinTerminalWidth  = 40
	MinTerminalHeight = 12

	// ExplorerWidthRatio is the denominator for the desktop explorer column
	ExplorerWidthRatio = 4

	// ExplorerMinWidth and ExplorerMaxWidth bound the desktop explorer column
	ExplorerMinWidth = 26
	ExplorerMaxWidth = 44

	// PreviewWidthRatio is the denominator for the desktop preview column
	PreviewWidthRatio = 3

	// DrawerMaxWidth caps the mobile explorer and preview drawers
	DrawerMaxWidth = 48

	// TextareaHeight is the number of lines for the chat input textarea
	TextareaHeight = 3

	// TextareaBorderHeight is the border size around the textarea
	TextareaBorderHeight = 2

	// InputPaddingWidth is the horizontal padding inside the input area (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// InputTotalHeight is the total height of the input area (textarea + borders)
	InputTotalHeight = TextareaHeight + TextareaBorderHeight

	// TitleHeight is the height of panel titles
	TitleHeight = 1

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80
)

// Explorer constants
const (
	// ExplorerSearchCharLimit bounds the search query length
	ExplorerSearchCharLimit = 64

	// GridCellWidth is the width of one tile in grid mode
	GridCellWidth = 16

	// EmptyClusterLabel is the placeholder row under an expanded folder
	EmptyClusterLabel = "Empty Cluster..."
)

// Login card constants
const (
	LoginCardWidth        = 44
	LoginInputCharLimit   = 64
	LoginTitle            = "Aegis_Core_Access"
	LoginErrorText        = "Invalid Security Token"
	LoginSubtitle         = "Authentication Required for Uplink"
	LoginInputPlaceholder = "ACCESS_CODE"
)

// Flash message timing
const (
	// DefaultFlashDuration is how long a flash stays in the footer
	DefaultFlashDuration = 4 * time.Second

	// FlashTickInterval is the poll interval for expiring flashes
	FlashTickInterval = 500 * time.Millisecond
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50

	// HelpModalMaxVisible is the number of rows in the help list
	HelpModalMaxVisible = 16

	// QuickOpenMaxVisible is the number of ranked matches shown in quick open
	QuickOpenMaxVisible = 8
)
