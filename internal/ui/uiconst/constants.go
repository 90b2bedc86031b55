package uiconst

// Table column widths
const (
	ColWidthName    = 20 // Name columns
	ColWidthEmail   = 28 // Email columns
	ColWidthStatus  = 12 // Status/State columns
	ColWidthAge     = 6  // Small numeric columns
	ColWidthCity    = 16 // City/location columns
	ColWidthBool    = 8  // Boolean columns
	ColWidthCheck   = 4  // Selection checkbox column
	ColWidthField   = 20 // Field name in detail views
	ColWidthValue   = 60 // Value in detail views
	ColWidthDefault = 15 // Fallback when a column sets no width
	ColWidthMin     = 4  // Hard floor for truncated columns
)

// Table layout constants
const (
	TableHeightOffset = 6  // Subtracted from terminal height: m.height - TableHeightOffset
	DefaultPageSize   = 10 // Rows per page when pagination is enabled
	PageButtonCount   = 5  // Explicit page-number buttons before the jump-to-last shortcut
)

// Input field widths per size
const (
	FieldWidthSM = 20
	FieldWidthMD = 30
	FieldWidthLG = 40
)

// AnnounceClearDelayMS is how long a transient announcement stays
// visible before the live region is cleared, in milliseconds.
const AnnounceClearDelayMS = 3000
