package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

const namespace = "blog"

func New(logger *slog.Logger, service *BlogService) *zenrpc.Server {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register(namespace, service)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "blog-cms", nil))

	return rpcServer
}
