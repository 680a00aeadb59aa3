// Package client provides commands that call a running talent gRPC service
package client

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/foolchen/lifeRestart/internal/handlers/talent/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running talent service",
	Long:  `Client commands make real gRPC requests against a running talent service.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(drawCmd)
	ClientCmd.AddCommand(replaceCmd)
	ClientCmd.AddCommand(getTalentCmd)
	ClientCmd.AddCommand(evaluateCmd)
}

// createTalentClient creates a talent service client
func createTalentClient() (v1alpha1.TalentServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}
	return v1alpha1.NewTalentServiceClient(conn), cleanup, nil
}

type call func(context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error)

// invoke sends req with the configured timeout and prints the response
func invoke(name string, pick func(v1alpha1.TalentServiceClient) call, req map[string]any) error {
	client, cleanup, err := createTalentClient()
	if err != nil {
		return err
	}
	defer cleanup()

	in, err := structpb.NewStruct(req)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := pick(client)(ctx, in)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", name, err)
	}

	out, err := protojson.MarshalOptions{Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	_, err = fmt.Fprintln(os.Stdout, string(out))
	return err
}

func parseIDs(args []string) ([]any, error) {
	ids := make([]any, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid talent id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
