// Package proto holds the generated Iron Bank gRPC API (proto/ironbank/v1/bank.proto).
package proto

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/dmitrijs2005/ironbank --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/ironbank ironbank/v1/bank.proto
