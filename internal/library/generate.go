package library

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_library.go github.com/vmunix/arrdeck/internal/library MovieLibrary,SeriesLibrary,Metadata
