package field

//go:generate go run ../internal/codegen/cmd/genfield -out addchain_gen.go -modulus 5 -bits 3
