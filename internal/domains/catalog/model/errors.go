package model

// FetchErrorMessage is the advisory message recorded on the snapshot
// when the feed cannot be loaded. User-visible wording, kept stable.
const FetchErrorMessage = "Failed to load books. Please try again later."
