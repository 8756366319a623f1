// Package v1alpha1 holds the gRPC API served by bcmd, generated from bcmapi.proto.
package v1alpha1

//go:generate protoc -I ../../.. --go_out=../../.. --go_opt=paths=source_relative --go-grpc_out=../../.. --go-grpc_opt=paths=source_relative api/bcmapi/v1alpha1/bcmapi.proto
