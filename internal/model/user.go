package model

// User represents a marketplace identity. At most one user is the
// "current" identity of the process at any time; the session package
// owns that slot. IDs are assigned once at creation and never change.
//
// Fields:
//  ID        – unique identifier of the user.
//  Username  – display name shown on listings and trade offers.
//  Email     – contact address used to log in.
//  Location  – optional free-form location string.
//  Bio       – optional short biography.
//  AvatarURL – optional avatar image reference.
type User struct {
    ID        string `json:"id"`        // immutable once assigned
    Username  string `json:"username"`  // denormalized onto books and offers at write time
    Email     string `json:"email"`
    Location  string `json:"location,omitempty"`
    Bio       string `json:"bio,omitempty"`
    AvatarURL string `json:"avatarUrl,omitempty"`
}
