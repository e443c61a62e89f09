/*
Copyright 2023 The Alibaba Cloud Serverless Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at
    http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command platformsim runs the Platform Simulator standalone on a
// TCP listener, for manual testing of a real scaler binary over
// loopback gRPC.
package main

import (
	"flag"
	"net"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"

	"github.com/mycraftmw/scaler/go/pkg/platformsim"
	pb "github.com/mycraftmw/scaler/proto"
)

func main() {
	addr := flag.String("listen", "127.0.0.1:50051", "Address to listen on")
	initDelay := flag.Duration("init-delay", 0, "Artificial latency added to every Init call")
	flag.Parse()

	sim := platformsim.New()
	sim.InitDuration = *initDelay

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", *addr).Msg("platformsim: listen failed")
	}

	grpcServer := grpc.NewServer()
	pb.RegisterPlatformServer(grpcServer, sim)

	log.Info().Str("addr", *addr).Dur("init_delay", *initDelay).Msg("platformsim: serving")
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatal().Err(err).Msg("platformsim: serve failed")
	}
}
