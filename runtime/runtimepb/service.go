package runtimepb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const RuntimeServiceName = "qubitscope.runtime.v1.Runtime"

// RuntimeClient is the client API for the Runtime service.
type RuntimeClient interface {
	ListBackends(ctx context.Context, in *ListBackendsRequest, opts ...grpc.CallOption) (*BackendList, error)
	GetBackend(ctx context.Context, in *GetBackendRequest, opts ...grpc.CallOption) (*BackendSnapshot, error)
	OpenSession(ctx context.Context, in *OpenSessionRequest, opts ...grpc.CallOption) (*SessionHandle, error)
	CloseSession(ctx context.Context, in *SessionHandle, opts ...grpc.CallOption) (*Ack, error)
	Transpile(ctx context.Context, in *TranspileRequest, opts ...grpc.CallOption) (*TranspileReply, error)
	RunSampler(ctx context.Context, in *SamplerRunRequest, opts ...grpc.CallOption) (*JobHandle, error)
	GetJobStatus(ctx context.Context, in *JobHandle, opts ...grpc.CallOption) (*JobStatusReply, error)
	GetJobResult(ctx context.Context, in *JobHandle, opts ...grpc.CallOption) (*SamplerResult, error)
	CancelJob(ctx context.Context, in *JobHandle, opts ...grpc.CallOption) (*Ack, error)
	ListJobs(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*JobList, error)
}

type runtimeClient struct {
	cc grpc.ClientConnInterface
}

func NewRuntimeClient(cc grpc.ClientConnInterface) RuntimeClient {
	return &runtimeClient{cc}
}

func (c *runtimeClient) ListBackends(ctx context.Context, in *ListBackendsRequest, opts ...grpc.CallOption) (*BackendList, error) {
	out := new(BackendList)
	err := c.cc.Invoke(ctx, "/"+RuntimeServiceName+"/ListBackends", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *runtimeClient) GetBackend(ctx context.Context, in *GetBackendRequest, opts ...grpc.CallOption) (*BackendSnapshot, error) {
	out := new(BackendSnapshot)
	err := c.cc.Invoke(ctx, "/"+RuntimeServiceName+"/GetBackend", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *runtimeClient) OpenSession(ctx context.Context, in *OpenSessionRequest, opts ...grpc.CallOption) (*SessionHandle, error) {
	out := new(SessionHandle)
	err := c.cc.Invoke(ctx, "/"+RuntimeServiceName+"/OpenSession", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *runtimeClient) CloseSession(ctx context.Context, in *SessionHandle, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/"+RuntimeServiceName+"/CloseSession", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *runtimeClient) Transpile(ctx context.Context, in *TranspileRequest, opts ...grpc.CallOption) (*TranspileReply, error) {
	out := new(TranspileReply)
	err := c.cc.Invoke(ctx, "/"+RuntimeServiceName+"/Transpile", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *runtimeClient) RunSampler(ctx context.Context, in *SamplerRunRequest, opts ...grpc.CallOption) (*JobHandle, error) {
	out := new(JobHandle)
	err := c.cc.Invoke(ctx, "/"+RuntimeServiceName+"/RunSampler", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *runtimeClient) GetJobStatus(ctx context.Context, in *JobHandle, opts ...grpc.CallOption) (*JobStatusReply, error) {
	out := new(JobStatusReply)
	err := c.cc.Invoke(ctx, "/"+RuntimeServiceName+"/GetJobStatus", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *runtimeClient) GetJobResult(ctx context.Context, in *JobHandle, opts ...grpc.CallOption) (*SamplerResult, error) {
	out := new(SamplerResult)
	err := c.cc.Invoke(ctx, "/"+RuntimeServiceName+"/GetJobResult", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *runtimeClient) CancelJob(ctx context.Context, in *JobHandle, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/"+RuntimeServiceName+"/CancelJob", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *runtimeClient) ListJobs(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*JobList, error) {
	out := new(JobList)
	err := c.cc.Invoke(ctx, "/"+RuntimeServiceName+"/ListJobs", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RuntimeServer is the server API for the Runtime service.
type RuntimeServer interface {
	ListBackends(context.Context, *ListBackendsRequest) (*BackendList, error)
	GetBackend(context.Context, *GetBackendRequest) (*BackendSnapshot, error)
	OpenSession(context.Context, *OpenSessionRequest) (*SessionHandle, error)
	CloseSession(context.Context, *SessionHandle) (*Ack, error)
	Transpile(context.Context, *TranspileRequest) (*TranspileReply, error)
	RunSampler(context.Context, *SamplerRunRequest) (*JobHandle, error)
	GetJobStatus(context.Context, *JobHandle) (*JobStatusReply, error)
	GetJobResult(context.Context, *JobHandle) (*SamplerResult, error)
	CancelJob(context.Context, *JobHandle) (*Ack, error)
	ListJobs(context.Context, *ListJobsRequest) (*JobList, error)
}

// UnimplementedRuntimeServer can be embedded for forward compatibility.
type UnimplementedRuntimeServer struct{}

func (UnimplementedRuntimeServer) ListBackends(context.Context, *ListBackendsRequest) (*BackendList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListBackends not implemented")
}
func (UnimplementedRuntimeServer) GetBackend(context.Context, *GetBackendRequest) (*BackendSnapshot, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBackend not implemented")
}
func (UnimplementedRuntimeServer) OpenSession(context.Context, *OpenSessionRequest) (*SessionHandle, error) {
	return nil, status.Errorf(codes.Unimplemented, "method OpenSession not implemented")
}
func (UnimplementedRuntimeServer) CloseSession(context.Context, *SessionHandle) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CloseSession not implemented")
}
func (UnimplementedRuntimeServer) Transpile(context.Context, *TranspileRequest) (*TranspileReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Transpile not implemented")
}
func (UnimplementedRuntimeServer) RunSampler(context.Context, *SamplerRunRequest) (*JobHandle, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RunSampler not implemented")
}
func (UnimplementedRuntimeServer) GetJobStatus(context.Context, *JobHandle) (*JobStatusReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetJobStatus not implemented")
}
func (UnimplementedRuntimeServer) GetJobResult(context.Context, *JobHandle) (*SamplerResult, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetJobResult not implemented")
}
func (UnimplementedRuntimeServer) CancelJob(context.Context, *JobHandle) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelJob not implemented")
}
func (UnimplementedRuntimeServer) ListJobs(context.Context, *ListJobsRequest) (*JobList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListJobs not implemented")
}

// RegisterRuntimeServer registers the service implementation with a gRPC server.
func RegisterRuntimeServer(s grpc.ServiceRegistrar, srv RuntimeServer) {
	s.RegisterService(&RuntimeServiceDesc, srv)
}

func listBackendsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListBackendsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RuntimeServer).ListBackends(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + RuntimeServiceName + "/ListBackends"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RuntimeServer).ListBackends(ctx, req.(*ListBackendsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getBackendHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetBackendRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RuntimeServer).GetBackend(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + RuntimeServiceName + "/GetBackend"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RuntimeServer).GetBackend(ctx, req.(*GetBackendRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func openSessionHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(OpenSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RuntimeServer).OpenSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + RuntimeServiceName + "/OpenSession"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RuntimeServer).OpenSession(ctx, req.(*OpenSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func closeSessionHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SessionHandle)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RuntimeServer).CloseSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + RuntimeServiceName + "/CloseSession"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RuntimeServer).CloseSession(ctx, req.(*SessionHandle))
	}
	return interceptor(ctx, in, info, handler)
}

func transpileHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TranspileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RuntimeServer).Transpile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + RuntimeServiceName + "/Transpile"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RuntimeServer).Transpile(ctx, req.(*TranspileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func runSamplerHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SamplerRunRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RuntimeServer).RunSampler(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + RuntimeServiceName + "/RunSampler"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RuntimeServer).RunSampler(ctx, req.(*SamplerRunRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getJobStatusHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(JobHandle)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RuntimeServer).GetJobStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + RuntimeServiceName + "/GetJobStatus"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RuntimeServer).GetJobStatus(ctx, req.(*JobHandle))
	}
	return interceptor(ctx, in, info, handler)
}

func getJobResultHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(JobHandle)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RuntimeServer).GetJobResult(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + RuntimeServiceName + "/GetJobResult"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RuntimeServer).GetJobResult(ctx, req.(*JobHandle))
	}
	return interceptor(ctx, in, info, handler)
}

func cancelJobHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(JobHandle)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RuntimeServer).CancelJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + RuntimeServiceName + "/CancelJob"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RuntimeServer).CancelJob(ctx, req.(*JobHandle))
	}
	return interceptor(ctx, in, info, handler)
}

func listJobsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListJobsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RuntimeServer).ListJobs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + RuntimeServiceName + "/ListJobs"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RuntimeServer).ListJobs(ctx, req.(*ListJobsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RuntimeServiceDesc is the grpc.ServiceDesc for the Runtime service.
var RuntimeServiceDesc = grpc.ServiceDesc{
	ServiceName: RuntimeServiceName,
	HandlerType: (*RuntimeServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListBackends", Handler: listBackendsHandler},
		{MethodName: "GetBackend", Handler: getBackendHandler},
		{MethodName: "OpenSession", Handler: openSessionHandler},
		{MethodName: "CloseSession", Handler: closeSessionHandler},
		{MethodName: "Transpile", Handler: transpileHandler},
		{MethodName: "RunSampler", Handler: runSamplerHandler},
		{MethodName: "GetJobStatus", Handler: getJobStatusHandler},
		{MethodName: "GetJobResult", Handler: getJobResultHandler},
		{MethodName: "CancelJob", Handler: cancelJobHandler},
		{MethodName: "ListJobs", Handler: listJobsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "runtime.proto",
}
