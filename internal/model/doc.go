package model

// Package model defines domain data structures used across the app: star
// observations, evolutionary track tables, mass groups, and message levels.
// Values are plain data; loading and rendering live in other packages.
