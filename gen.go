package measurement

//go:generate go run ./internal/genmetric -o metric_gen.go
