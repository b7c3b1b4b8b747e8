package utils

import "os"

// MobileEmulateEnv 设置为 1 时桌面端按移动端处理（隐藏按键提示等），用于本地调试触屏布局
const MobileEmulateEnv = "MEMORIS_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
func IsMobile() bool {
	return mobileBuild || os.Getenv(MobileEmulateEnv) == "1"
}
