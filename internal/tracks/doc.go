package tracks

// Package tracks loads evolutionary track tables from CSV files. Tables are
// read eagerly on every call and never cached, so edits to the files show up
// on the next render pass.
