package models

// DefaultTitle is the title given to todos created without one
const DefaultTitle = "empty todo..."

// MaxTitleLength is the longest title, in runes, accepted on create or update
const MaxTitleLength = 255

// FirstOrder is the order key handed to the first todo in an empty collection
const FirstOrder = 1
